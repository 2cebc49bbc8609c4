// Package media stores listing images in MongoDB GridFS.  The store is
// an optional integration: when no MONGO_URL is configured or the
// server is unreachable at startup, NewStore returns nil and the image
// endpoints respond 503, mirroring how Redis-backed features degrade.
package media

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewStore connects to MongoDB and returns a Store bound to the given
// database.  A nil Store means image uploads are disabled.
func NewStore(uri, dbName string) *Store {
	if uri == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("media: mongo connect failed: %v", err)
		return nil
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("media: mongo ping failed: %v", err)
		return nil
	}
	return &Store{db: client.Database(dbName)}
}
