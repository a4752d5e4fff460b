package routes

import (
	"github.com/julienschmidt/httprouter"

	"passabola/activity"
	"passabola/auth"
	"passabola/cart"
	"passabola/catalog"
	"passabola/coach"
	"passabola/middleware"
	"passabola/news"
	"passabola/notify"
	"passabola/ratelim"
	"passabola/scheduler"
	"passabola/stats"
	"passabola/userdir"
)

// Handlers bundles every constructed handler main wires up.
type Handlers struct {
	Auth     *auth.Handler
	Users    *userdir.Handler
	Catalog  *catalog.Handler
	Games    *scheduler.Handler
	News     *news.Handler
	Cart     *cart.Handler
	Activity *activity.Handler
	Stats    *stats.Handler
	StatsHub *stats.Hub
	Notify   *notify.Handler
	Coach    *coach.Handler
}

func RoutesWrapper(router *httprouter.Router, h Handlers, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, h.Auth, rateLimiter)
	AddUserRoutes(router, h.Users)
	AddCatalogRoutes(router, h.Catalog)
	AddGameRoutes(router, h.Games)
	AddNewsRoutes(router, h.News)
	AddCartRoutes(router, h.Cart)
	AddActivityRoutes(router, h.Activity)
	AddStatsRoutes(router, h.Stats, h.StatsHub)
	AddNotifyRoutes(router, h.Notify)
	AddCoachRoutes(router, h.Coach)
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(h.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(h.Login))
	router.GET("/api/auth/me", middleware.Authenticate(h.Me))
}

func AddUserRoutes(router *httprouter.Router, h *userdir.Handler) {
	router.GET("/api/users", middleware.Authenticate(middleware.AdminOnly(h.ListUsers)))
	router.GET("/api/users/:id", middleware.Authenticate(middleware.AdminOnly(h.GetUser)))
	router.POST("/api/users", middleware.Authenticate(middleware.AdminOnly(h.CreateUser)))
	router.PUT("/api/users/:id", middleware.Authenticate(middleware.AdminOnly(h.UpdateUser)))
	router.DELETE("/api/users/:id", middleware.Authenticate(middleware.AdminOnly(h.DeleteUser)))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handler) {
	router.GET("/api/products", h.GetCatalog)
	router.GET("/api/products/:id", h.GetProduct)

	router.GET("/api/admin/products", middleware.Authenticate(middleware.AdminOnly(h.ListAdmin)))
	router.POST("/api/admin/products", middleware.Authenticate(middleware.AdminOnly(h.Create)))
	router.PUT("/api/admin/products/:id", middleware.Authenticate(middleware.AdminOnly(h.Update)))
	router.DELETE("/api/admin/products/:id", middleware.Authenticate(middleware.AdminOnly(h.Delete)))
	router.PATCH("/api/admin/products/:id/publish", middleware.Authenticate(middleware.AdminOnly(h.TogglePublish)))
}

func AddGameRoutes(router *httprouter.Router, h *scheduler.Handler) {
	router.GET("/api/games", h.List)
	router.GET("/api/games/available", h.Available)
	router.GET("/api/games/date/:date", h.OnDate)
	router.GET("/api/games/calendar/:year/:month", h.Calendar)
	router.GET("/api/games/game/:id", h.Get)
	router.GET("/api/games/game/:id/qr", h.ShareQR)

	router.POST("/api/games", middleware.Authenticate(h.Create))
	router.POST("/api/games/game/:id/join", middleware.Authenticate(h.Join))

	router.GET("/api/admin/games/pending", middleware.Authenticate(middleware.AdminOnly(h.Pending)))
	router.POST("/api/admin/games/:id/approve", middleware.Authenticate(middleware.AdminOnly(h.Approve)))
	router.POST("/api/admin/games/:id/reject", middleware.Authenticate(middleware.AdminOnly(h.Reject)))
	router.DELETE("/api/admin/games/:id", middleware.Authenticate(middleware.AdminOnly(h.Delete)))
}

func AddNewsRoutes(router *httprouter.Router, h *news.Handler) {
	router.GET("/api/news", h.GetFeed)
	router.GET("/api/news/:id", h.GetArticle)

	router.GET("/api/news-favorites", middleware.Authenticate(h.GetFavorites))
	router.POST("/api/news-favorites/:id", middleware.Authenticate(h.ToggleFavorite))

	router.POST("/api/admin/news", middleware.Authenticate(middleware.AdminOnly(h.Create)))
	router.PATCH("/api/admin/news/:id/publish", middleware.Authenticate(middleware.AdminOnly(h.TogglePublish)))
	router.DELETE("/api/admin/news/:id", middleware.Authenticate(middleware.AdminOnly(h.Delete)))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", middleware.Authenticate(h.GetCart))
	router.POST("/api/cart", middleware.Authenticate(h.AddItem))
	router.PUT("/api/cart/:productid", middleware.Authenticate(h.UpdateItem))
	router.DELETE("/api/cart", middleware.Authenticate(h.ClearCart))
	router.POST("/api/cart/checkout", middleware.Authenticate(h.Checkout))

	router.GET("/api/shop-favorites", middleware.Authenticate(h.GetFavorites))
	router.POST("/api/shop-favorites/:productid", middleware.Authenticate(h.ToggleFavorite))
}

func AddActivityRoutes(router *httprouter.Router, h *activity.Handler) {
	router.GET("/api/activity/admin", middleware.Authenticate(middleware.AdminOnly(h.GetAdminFeed)))
	router.GET("/api/activity/me", middleware.Authenticate(h.GetUserFeed))
}

func AddStatsRoutes(router *httprouter.Router, h *stats.Handler, hub *stats.Hub) {
	router.GET("/api/admin/stats", middleware.Authenticate(middleware.AdminOnly(h.GetAdminStats)))
	router.POST("/api/admin/stats/refresh", middleware.Authenticate(middleware.AdminOnly(h.RefreshAdminStats)))
	router.GET("/api/admin/stats/live", hub.Subscribe)

	router.GET("/api/stats/me", middleware.Authenticate(h.GetUserStats))
	router.GET("/api/stats/me/upcoming", middleware.Authenticate(h.GetUpcomingGames))
}

func AddNotifyRoutes(router *httprouter.Router, h *notify.Handler) {
	router.GET("/api/notifications", middleware.Authenticate(h.ListMine))
	router.PATCH("/api/notifications/:id/read", middleware.Authenticate(h.MarkRead))

	router.GET("/api/admin/notifications", middleware.Authenticate(middleware.AdminOnly(h.ListAll)))
	router.POST("/api/admin/notifications", middleware.Authenticate(middleware.AdminOnly(h.Send)))
	router.DELETE("/api/admin/notifications/:id", middleware.Authenticate(middleware.AdminOnly(h.Delete)))
}

func AddCoachRoutes(router *httprouter.Router, h *coach.Handler) {
	router.GET("/api/coach/welcome", h.Welcome)
	router.POST("/api/coach/ask", middleware.Authenticate(h.Ask))
}
