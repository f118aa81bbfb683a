// Package mongo backs the key-value space with one MongoDB collection whose
// documents are {_id: key, value: bytes, updated_at: time}.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

const (
	defaultTimeout = 10 * time.Second
	kvCollection   = "recipe_book_kv"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KV implements store.Backend.
type KV struct {
	db   *mongo.Database
	coll *mongo.Collection
}

var _ store.Backend = (*KV)(nil)

func NewKV(db *mongo.Database) *KV {
	return &KV{db: db, coll: db.Collection(kvCollection)}
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDocument
	if err := kv.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrKeyNotFound
		}
		return nil, fmt.Errorf("mongo get %s: %w", key, err)
	}
	return doc.Value, nil
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}}
	_, err := kv.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo set %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := kv.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Ping(ctx context.Context) error {
	return kv.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (kv *KV) Close(ctx context.Context) error {
	return kv.db.Client().Disconnect(ctx)
}
