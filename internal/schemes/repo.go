package schemes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/cluster"
	"catalog/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSchemeNotFound  = errors.New("scheme not found")
	ErrModelNotTrained = errors.New("model not trained")
)

// Store persists schemes and the trained categorizer.
type Store interface {
	Insert(ctx context.Context, s *Scheme) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Scheme, error)
	List(ctx context.Context, q ListQuery) ([]*Scheme, error)
	UpdateCategories(ctx context.Context, categories map[primitive.ObjectID]string) error
	LoadModel(ctx context.Context) (*cluster.Model, error)
	SaveModel(ctx context.Context, m *cluster.Model, trainedOn int) error
}

const modelID = "categorizer"

type modelDoc struct {
	ID        string         `bson:"_id"`
	Model     *cluster.Model `bson:"model"`
	TrainedOn int            `bson:"trained_on"`
	TrainedAt time.Time      `bson:"trained_at"`
}

type Repo struct {
	coll   *mongo.Collection
	models *mongo.Collection
}

func NewRepo(database *mongo.Database) *Repo {
	return &Repo{
		coll:   database.Collection(db.SchemesCollection),
		models: database.Collection(db.ModelsCollection),
	}
}

// EnsureIndexes creates necessary indexes for the schemes collection
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "publish_date", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Insert stores a new scheme and assigns its ID.
func (r *Repo) Insert(ctx context.Context, s *Scheme) error {
	s.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert scheme: %w", err)
	}
	return nil
}

// FindByID retrieves a scheme by its ID
func (r *Repo) FindByID(ctx context.Context, id primitive.ObjectID) (*Scheme, error) {
	var s Scheme
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSchemeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find scheme %s: %w", id.Hex(), err)
	}
	return &s, nil
}

// List retrieves schemes in insertion order, optionally of one category.
func (r *Repo) List(ctx context.Context, q ListQuery) ([]*Scheme, error) {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer cursor.Close(ctx)

	schemes := []*Scheme{}
	if err := cursor.All(ctx, &schemes); err != nil {
		return nil, fmt.Errorf("decode schemes: %w", err)
	}
	return schemes, nil
}

// UpdateCategories sets the category of every listed scheme in one bulk write.
func (r *Repo) UpdateCategories(ctx context.Context, categories map[primitive.ObjectID]string) error {
	if len(categories) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(categories))
	for id, category := range categories {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"category": category}}))
	}

	if _, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("update categories: %w", err)
	}
	return nil
}

// LoadModel returns the last trained categorizer.
func (r *Repo) LoadModel(ctx context.Context) (*cluster.Model, error) {
	var doc modelDoc
	err := r.models.FindOne(ctx, bson.M{"_id": modelID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && doc.Model == nil) {
		return nil, ErrModelNotTrained
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	doc.Model.Prepare()
	return doc.Model, nil
}

// SaveModel replaces the stored categorizer.
func (r *Repo) SaveModel(ctx context.Context, m *cluster.Model, trainedOn int) error {
	doc := modelDoc{ID: modelID, Model: m, TrainedOn: trainedOn, TrainedAt: time.Now().UTC()}

	_, err := r.models.ReplaceOne(ctx, bson.M{"_id": modelID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}
