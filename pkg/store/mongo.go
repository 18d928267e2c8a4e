package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
)

// DefaultCollection is the collection layout documents live in.
const DefaultCollection = "layouts"

const mongoConnectTimeout = 10 * time.Second

// Mongo is a MongoDB-backed Store.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ Store = (*Mongo)(nil)

// MongoOptions configures NewMongo.
type MongoOptions struct {
	// URI is the connection string, e.g. mongodb://localhost:27017.
	URI string

	// Database holds the layout collection.
	Database string

	// Collection overrides DefaultCollection.
	Collection string
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, opts MongoOptions) (*Mongo, error) {
	if opts.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo uri must not be empty")
	}
	if opts.Database == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo database must not be empty")
	}
	collection := opts.Collection
	if collection == "" {
		collection = DefaultCollection
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", opts.URI, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping %s: %w", opts.URI, err)
	}

	return &Mongo{
		client:     client,
		collection: client.Database(opts.Database).Collection(collection),
	}, nil
}

func (s *Mongo) Save(ctx context.Context, doc *Layout) error {
	if doc == nil {
		return errors.New(errors.ErrCodeInvalidInput, "layout document is nil")
	}
	if err := errors.ValidateLayoutName(doc.Name); err != nil {
		return err
	}

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": doc.Name}, doc, mongooptions.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s: %w", doc.Name, err)
	}
	return nil
}

func (s *Mongo) Load(ctx context.Context, name string) (*Layout, error) {
	var doc Layout
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeNotFound, "layout %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return &doc, nil
}

func (s *Mongo) List(ctx context.Context) ([]string, error) {
	cursor, err := s.collection.Find(ctx, bson.D{},
		mongooptions.Find().
			SetProjection(bson.M{"_id": 1}).
			SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var row struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		names = append(names, row.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return names, nil
}

func (s *Mongo) Delete(ctx context.Context, name string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeNotFound, "layout %q not found", name)
	}
	return nil
}

func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
