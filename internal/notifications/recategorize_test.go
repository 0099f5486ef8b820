package notifications

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"catalog/internal/cluster"
	"catalog/internal/pubsub"
	"catalog/internal/schemes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// schemeStore is an in-memory schemes.Store.
type schemeStore struct {
	mu      sync.Mutex
	schemes []*schemes.Scheme
	model   *cluster.Model
}

func (s *schemeStore) Insert(ctx context.Context, sc *schemes.Scheme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc.ID = primitive.NewObjectID()
	cp := *sc
	s.schemes = append(s.schemes, &cp)
	return nil
}

func (s *schemeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*schemes.Scheme, error) {
	return nil, schemes.ErrSchemeNotFound
}

func (s *schemeStore) List(ctx context.Context, q schemes.ListQuery) ([]*schemes.Scheme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*schemes.Scheme{}
	for _, sc := range s.schemes {
		cp := *sc
		out = append(out, &cp)
	}
	return out, nil
}

func (s *schemeStore) UpdateCategories(ctx context.Context, categories map[primitive.ObjectID]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sc := range s.schemes {
		if c, ok := categories[sc.ID]; ok {
			sc.Category = c
		}
	}
	return nil
}

func (s *schemeStore) LoadModel(ctx context.Context) (*cluster.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		return nil, schemes.ErrModelNotTrained
	}
	return s.model, nil
}

func (s *schemeStore) SaveModel(ctx context.Context, m *cluster.Model, trainedOn int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
	return nil
}

func TestNotificationsFollowTrainedCategories(t *testing.T) {
	bus := pubsub.NewBus(discardLogger())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &memStore{}
	notifySvc := NewService(store, 10, discardLogger())
	require.NoError(t, notifySvc.Subscribe(ctx, bus))

	opts := cluster.DefaultOptions()
	opts.Clusters = 2
	schemeSvc := schemes.NewService(&schemeStore{}, bus, opts, discardLogger())

	for _, in := range []schemes.CreateSchemeInput{
		{Title: "Crop subsidy", Description: "Subsidy for farmers and farm irrigation"},
		{Title: "Hospital cover", Description: "Hospital treatment and health checkups"},
	} {
		_, err := schemeSvc.Create(ctx, in)
		require.NoError(t, err)
	}
	require.Eventually(t, func() bool { return store.len() == 2 }, 2*time.Second, 10*time.Millisecond)

	list, err := notifySvc.Latest(ctx)
	require.NoError(t, err)
	for _, n := range list {
		assert.Equal(t, schemes.Uncategorized, n.Category)
	}

	_, err = schemeSvc.Train(ctx)
	require.NoError(t, err)

	trained, err := schemeSvc.List(ctx, "")
	require.NoError(t, err)
	want := map[string]string{}
	for _, s := range trained {
		want[s.ID.Hex()] = s.Category
	}

	assert.Eventually(t, func() bool {
		list, err := notifySvc.Latest(ctx)
		if err != nil || len(list) != 2 {
			return false
		}
		for _, n := range list {
			if !strings.HasPrefix(n.Category, "Category_") || n.Category != want[n.SchemeID] {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
}
