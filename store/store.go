package store

import (
	"context"
	"log"
	"os"
)

// Store is a persistent mapping from string keys to JSON documents.
// Values are opaque here; (de)serialization happens at the collection
// boundary. Get never fails for an absent key - callers supply defaults.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Open picks a backend from the environment. STORE_BACKEND selects
// file (default), redis or mongo; unset falls back to a JSON file at
// STORE_PATH or ./passabola.json.
func Open(ctx context.Context) (Store, error) {
	switch os.Getenv("STORE_BACKEND") {
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return OpenRedis(ctx, addr)
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		return OpenMongo(ctx, uri)
	default:
		path := os.Getenv("STORE_PATH")
		if path == "" {
			path = "passabola.json"
		}
		log.Printf("store: using file backend at %s", path)
		return OpenFile(path)
	}
}
