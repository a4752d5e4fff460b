package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"passabola/activity"
	"passabola/auth"
	"passabola/cart"
	"passabola/catalog"
	"passabola/coach"
	"passabola/news"
	"passabola/notify"
	"passabola/ratelim"
	"passabola/routes"
	"passabola/scheduler"
	"passabola/stats"
	"passabola/store"
	"passabola/userdir"
)

const statsRefreshInterval = 30 * time.Second

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Open(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}

	// domain layer
	dir := userdir.New(db)
	actLog := activity.NewLog(db)
	products := catalog.NewManager(db)
	games := scheduler.New(db)
	articles := news.NewRepository(db)
	carts := cart.NewManager(db)
	outbox := notify.NewOutbox(db)
	agg := stats.NewAggregator(db, dir)
	assistant := coach.NewAssistant()

	// live admin-dashboard feed
	hub := stats.NewHub()
	go hub.Run()
	go agg.StartRefresher(ctx, statsRefreshInterval, hub)

	rateLimiter := ratelim.NewRateLimiter(5, 5)

	router := httprouter.New()
	router.GET("/health", Index)
	routes.RoutesWrapper(router, routes.Handlers{
		Auth:     auth.NewHandler(dir, actLog),
		Users:    userdir.NewHandler(dir, actLog),
		Catalog:  catalog.NewHandler(products, actLog),
		Games:    scheduler.NewHandler(games, dir, agg, actLog),
		News:     news.NewHandler(articles),
		Cart:     cart.NewHandler(carts, agg, actLog),
		Activity: activity.NewHandler(actLog),
		Stats:    stats.NewHandler(agg),
		StatsHub: hub,
		Notify:   notify.NewHandler(outbox, actLog),
		Coach:    coach.NewHandler(assistant),
	}, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// on shutdown: stop the live stats hub
	server.RegisterOnShutdown(func() {
		log.Println("🛑 Shutting down stats hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
