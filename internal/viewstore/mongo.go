package viewstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joeywhelan/redisStreamEventStore/internal/domain"
)

// MongoStore is a Store backed by a MongoDB collection, one document
// per account id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	log    zerolog.Logger
}

// NewMongoStore connects to uri and returns a MongoStore operating on
// database/collection.
func NewMongoStore(
	ctx context.Context, uri, database, collection string, logger zerolog.Logger,
) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("viewstore: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("viewstore: ping: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
		log:    logger,
	}, nil
}

// Apply implements Store. It issues a conditional upsert keyed by id
// that only matches a document not already carrying timestamp, so
// re-delivery of the same event is a no-op rather than a double
// application. A unique-key race between two concurrent first
// applications for the same id is retried once with upsert disabled.
func (s *MongoStore) Apply(ctx context.Context, id, timestamp string, delta int64) error {
	err := s.tryApply(ctx, id, timestamp, delta, true)
	if isDuplicateKey(err) {
		err = s.tryApply(ctx, id, timestamp, delta, false)
	}

	if err != nil {
		s.log.Error().Err(err).Str("id", id).Str("timestamp", timestamp).Msg("viewstore apply failed")

		return fmt.Errorf("viewstore: apply %s: %w", id, err)
	}

	return nil
}

func (s *MongoStore) tryApply(ctx context.Context, id, timestamp string, delta int64, upsert bool) error {
	filter := bson.M{"_id": id, "timestamps": bson.M{"$ne": timestamp}}
	update := bson.M{
		"$inc":      bson.M{"funds": delta},
		"$addToSet": bson.M{"timestamps": timestamp},
	}

	_, err := s.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))

	return err
}

// isDuplicateKey reports whether err is MongoDB's E11000 duplicate-key
// write error, the signature of two concurrent first-time upserts
// racing to create the same document.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	var we mongo.WriteException
	if !errorsAsWriteException(err, &we) {
		return false
	}

	for _, e := range we.WriteErrors {
		if e.Code == 11000 {
			return true
		}
	}

	return false
}

func errorsAsWriteException(err error, target *mongo.WriteException) bool {
	we, ok := err.(mongo.WriteException)
	if !ok {
		return false
	}

	*target = we

	return true
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	var rec Record

	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return rec, domain.ErrNotFound
		}

		return rec, fmt.Errorf("viewstore: get %s: %w", id, err)
	}

	return rec, nil
}

// Close implements Store.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
