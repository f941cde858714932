package cache

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoEntry is the document shape stored per cache key.
type mongoEntry struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

// MongoCache stores entries in a MongoDB collection, one document per
// key. Expiration is checked on read; a background TTL index on
// expires_at keeps the collection from growing unbounded.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoCache connects to MongoDB at uri and uses the given database
// and collection. Connectivity is verified with a ping, and a TTL index
// on expires_at is created if absent.
func NewMongoCache(ctx context.Context, uri, database, collection string) (Cache, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	coll := client.Database(database).Collection(collection)

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoCache{client: client, coll: coll}, nil
}

// Get retrieves a value. Expired documents count as misses even before
// the TTL monitor removes them.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Retryable(err)
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = c.Delete(ctx, key)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set upserts a value. A non-positive ttl stores without expiry.
// Transient write failures are retried with backoff.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{Key: key, Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	return RetryWithBackoff(ctx, func() error {
		_, err := c.coll.ReplaceOne(ctx,
			bson.M{"_id": key},
			entry,
			options.Replace().SetUpsert(true))
		if err != nil {
			return Retryable(err)
		}
		return nil
	})
}

// Delete removes a value. Deleting an absent key is not an error.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return Retryable(err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

// Ensure MongoCache implements Cache.
var _ Cache = (*MongoCache)(nil)
