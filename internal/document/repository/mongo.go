package repository

import (
	"context"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentKey is the _id of the single Mongo document holding the newsroom.
const DocumentKey = "newsroom"

// MongoRepo stores the whole newsroom as one Mongo document that is replaced
// wholesale on every save.
type MongoRepo struct {
	col     *mongo.Collection
	timeout time.Duration
}

type mongoEnvelope struct {
	ID                string    `bson:"_id"`
	UpdatedAt         time.Time `bson:"updatedAt"`
	document.Document `bson:",inline"`
}

func NewMongoRepo(col *mongo.Collection, timeout time.Duration) *MongoRepo {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MongoRepo{col: col, timeout: timeout}
}

func (m *MongoRepo) Load(ctx context.Context) (*document.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var env mongoEnvelope
	err := m.col.FindOne(ctx, bson.M{"_id": DocumentKey}).Decode(&env)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return document.New(), nil
		}
		return nil, err
	}
	doc := env.Document
	doc.Normalize()
	return &doc, nil
}

func (m *MongoRepo) Save(ctx context.Context, doc *document.Document) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	doc.Normalize()
	env := mongoEnvelope{ID: DocumentKey, UpdatedAt: time.Now().UTC(), Document: *doc}
	opts := options.Replace().SetUpsert(true)
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": DocumentKey}, env, opts)
	return err
}
