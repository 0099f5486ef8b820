package schemes

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"catalog/internal/cluster"
	"catalog/internal/pubsub"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory Store.
type memStore struct {
	mu         sync.Mutex
	schemes    []*Scheme
	model      *cluster.Model
	trainedOn  int
	modelLoads int
	listErr    error
}

func (m *memStore) Insert(ctx context.Context, s *Scheme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = primitive.NewObjectID()
	cp := *s
	m.schemes = append(m.schemes, &cp)
	return nil
}

func (m *memStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Scheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.schemes {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrSchemeNotFound
}

func (m *memStore) List(ctx context.Context, q ListQuery) ([]*Scheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []*Scheme{}
	for _, s := range m.schemes {
		if q.Category == "" || s.Category == q.Category {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) UpdateCategories(ctx context.Context, categories map[primitive.ObjectID]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.schemes {
		if c, ok := categories[s.ID]; ok {
			s.Category = c
		}
	}
	return nil
}

func (m *memStore) LoadModel(ctx context.Context) (*cluster.Model, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modelLoads++
	if m.model == nil {
		return nil, ErrModelNotTrained
	}
	return m.model, nil
}

func (m *memStore) SaveModel(ctx context.Context, model *cluster.Model, trainedOn int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.model, m.trainedOn = model, trainedOn
	return nil
}

// recordingPublisher keeps every published message.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []pubsub.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pubsub.Message(nil), p.messages...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService() (*Service, *memStore, *recordingPublisher) {
	store := &memStore{}
	pub := &recordingPublisher{}
	opts := cluster.DefaultOptions()
	opts.Clusters = 2
	return NewService(store, pub, opts, discardLogger()), store, pub
}
