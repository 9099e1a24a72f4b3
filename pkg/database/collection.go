package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection provides typed access to a MongoDB collection. Unlike a cache it
// always reads the live document: vote and review operations are
// read-modify-write and must not observe stale state.
type Collection[T any] struct {
	collection *mongo.Collection
	dbInstance *Database
}

// NewCollection creates a typed accessor for a collection
func NewCollection[T any](collectionName string, db *Database) *Collection[T] {
	return &Collection[T]{
		collection: db.GetCollection(collectionName),
		dbInstance: db,
	}
}

// FindOne retrieves a single document matching the query.
// Returns (nil, nil) when no document matches.
func (c *Collection[T]) FindOne(ctx context.Context, query bson.M) (*T, error) {
	if !c.dbInstance.Connected() || c.collection == nil {
		return nil, fmt.Errorf("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result T
	err := c.collection.FindOne(ctx, query).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Find retrieves all documents matching the query
func (c *Collection[T]) Find(ctx context.Context, query bson.M) ([]*T, error) {
	if !c.dbInstance.Connected() || c.collection == nil {
		return nil, fmt.Errorf("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := c.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []*T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		results = append(results, &doc)
	}

	return results, cursor.Err()
}

// Insert creates a new document
func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	if !c.dbInstance.Connected() || c.collection == nil {
		return fmt.Errorf("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.collection.InsertOne(ctx, doc)
	return err
}

// Save replaces the document matching the query, creating it if missing
func (c *Collection[T]) Save(ctx context.Context, query bson.M, doc *T) error {
	if !c.dbInstance.Connected() || c.collection == nil {
		return fmt.Errorf("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := c.collection.ReplaceOne(ctx, query, doc, opts)
	return err
}

// Delete removes the document matching the query
func (c *Collection[T]) Delete(ctx context.Context, query bson.M) error {
	if !c.dbInstance.Connected() || c.collection == nil {
		return fmt.Errorf("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.collection.DeleteOne(ctx, query)
	return err
}
