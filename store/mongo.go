package store

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one {_id, value} document per key. The value is the
// whole serialized collection, so reads and writes stay all-or-nothing
// per key exactly as with the file backend.
type MongoStore struct {
	coll *mongo.Collection
}

type kvDoc struct {
	ID    string `bson:"_id"`
	Value []byte `bson:"value"`
}

func OpenMongo(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: mongo ping: %w", err)
	}
	log.Printf("store: using mongo backend at %s", uri)
	return &MongoStore{coll: client.Database("passabola").Collection("kv")}, nil
}

func (ms *MongoStore) Get(ctx context.Context, key string) ([]byte, bool) {
	var doc kvDoc
	err := ms.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false
	}
	if err != nil {
		log.Println("store: mongo get error:", err)
		return nil, false
	}
	return doc.Value, true
}

func (ms *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := ms.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDoc{ID: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (ms *MongoStore) Remove(ctx context.Context, key string) error {
	_, err := ms.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
