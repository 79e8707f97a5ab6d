package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// Mongo backs the shared server deployment. Templates live in a "templates"
// collection, records in "records".
type Mongo struct {
	client    *mongo.Client
	templates *mongo.Collection
	records   *mongo.Collection
}

// NewMongo connects to MongoDB and seeds the builtin templates if the
// templates collection is empty.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "pinging mongodb")
	}

	db := client.Database(database)
	s := &Mongo{
		client:    client,
		templates: db.Collection("templates"),
		records:   db.Collection("records"),
	}
	if err := s.seed(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Mongo) seed(ctx context.Context) error {
	count, err := s.templates.CountDocuments(ctx, bson.D{})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "counting templates")
	}
	if count > 0 {
		return nil
	}
	docs := make([]any, 0, len(BuiltinTemplates()))
	for _, t := range BuiltinTemplates() {
		docs = append(docs, t)
	}
	if _, err := s.templates.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "seeding templates")
	}
	return nil
}

// Templates lists templates ordered by ID.
func (s *Mongo) Templates(ctx context.Context) ([]Template, error) {
	cur, err := s.templates.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "listing templates")
	}
	defer cur.Close(ctx)

	var out []Template
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decoding templates")
	}
	return out, nil
}

// Template fetches one template by ID.
func (s *Mongo) Template(ctx context.Context, id string) (Template, error) {
	var t Template
	err := s.templates.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return Template{}, errors.New(errors.ErrCodeNotFound, "template %q not found", id)
	}
	if err != nil {
		return Template{}, errors.Wrap(errors.ErrCodeInternal, err, "fetching template %q", id)
	}
	return t, nil
}

// SaveRecord appends a generation record.
func (s *Mongo) SaveRecord(ctx context.Context, rec Record) error {
	if _, err := s.records.InsertOne(ctx, rec); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "saving record")
	}
	return nil
}

// Stats aggregates saved records with a single aggregation pipeline.
func (s *Mongo) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.records.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$archetype"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "enhanced", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$enhanced", 1, 0}},
			}}}},
		}}},
	})
	if err != nil {
		return Stats{}, errors.Wrap(errors.ErrCodeInternal, err, "aggregating stats")
	}
	defer cur.Close(ctx)

	var rows []struct {
		Archetype wireframe.Archetype `bson:"_id"`
		Count     int                 `bson:"count"`
		Enhanced  int                 `bson:"enhanced"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, errors.Wrap(errors.ErrCodeInternal, err, "decoding stats")
	}

	stats := Stats{ByArchetype: make(map[wireframe.Archetype]int)}
	for _, row := range rows {
		stats.TotalGenerations += row.Count
		stats.Enhanced += row.Enhanced
		stats.ByArchetype[row.Archetype] = row.Count
	}
	return stats, nil
}

// Close disconnects from MongoDB.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*Mongo)(nil)
