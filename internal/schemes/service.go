package schemes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"catalog/internal/cluster"
	"catalog/internal/pubsub"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotEnoughSchemes = errors.New("need at least 2 schemes to train")
)

type Service struct {
	store    Store
	pub      pubsub.Publisher
	validate *validator.Validate
	opts     cluster.Options
	log      *slog.Logger
	now      func() time.Time

	mu     sync.RWMutex
	model  *cluster.Model
	loaded bool
}

func NewService(store Store, pub pubsub.Publisher, opts cluster.Options, log *slog.Logger) *Service {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})

	return &Service{
		store:    store,
		pub:      pub,
		validate: validate,
		opts:     opts,
		log:      log,
		now:      time.Now,
	}
}

// Create validates, categorizes and stores a new scheme, then announces it.
func (s *Service) Create(ctx context.Context, input CreateSchemeInput) (*Scheme, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	raw := input.Title + " " + input.Description
	category, err := s.categorize(ctx, raw)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	scheme := &Scheme{
		Title:       input.Title,
		Description: input.Description,
		RawText:     raw,
		Category:    category,
		PublishDate: &now,
	}
	if err := s.store.Insert(ctx, scheme); err != nil {
		return nil, err
	}

	if err := publishCreated(ctx, s.pub, scheme, now); err != nil {
		// the scheme is stored; only its notification is lost
		s.log.Warn("failed to publish scheme creation", "scheme_id", scheme.ID.Hex(), "error", err)
	}

	return scheme, nil
}

// Get retrieves a scheme by ID
func (s *Service) Get(ctx context.Context, id string) (*Scheme, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid scheme ID", ErrInvalidInput)
	}
	return s.store.FindByID(ctx, oid)
}

// List retrieves schemes, optionally of one category
func (s *Service) List(ctx context.Context, category string) ([]*Scheme, error) {
	return s.store.List(ctx, ListQuery{Category: category})
}

// Train fits a new categorizer on every stored scheme, re-categorizes them all and
// returns how many were used.
func (s *Service) Train(ctx context.Context) (int, error) {
	all, err := s.store.List(ctx, ListQuery{})
	if err != nil {
		return 0, err
	}
	if len(all) < 2 {
		return 0, ErrNotEnoughSchemes
	}

	texts := make([]string, len(all))
	for i, sc := range all {
		texts[i] = sc.RawText
	}

	model, assign, err := cluster.Train(texts, s.opts)
	if err != nil {
		return 0, fmt.Errorf("train model: %w", err)
	}

	if err := s.store.SaveModel(ctx, model, len(all)); err != nil {
		return 0, err
	}

	categories := make(map[primitive.ObjectID]string, len(all))
	byHex := make(map[string]string, len(all))
	for i, sc := range all {
		label := cluster.Label(assign[i])
		categories[sc.ID] = label
		byHex[sc.ID.Hex()] = label
	}
	if err := s.store.UpdateCategories(ctx, categories); err != nil {
		return 0, err
	}

	if err := publishRecategorized(ctx, s.pub, byHex, s.now().UTC()); err != nil {
		// schemes are re-labelled; notifications keep their old category
		s.log.Warn("failed to publish recategorization", "error", err)
	}

	s.mu.Lock()
	s.model, s.loaded = model, true
	s.mu.Unlock()

	s.log.Info("model trained", "schemes", len(all), "clusters", len(model.Centroids))
	return len(all), nil
}

func (s *Service) categorize(ctx context.Context, text string) (string, error) {
	model, err := s.currentModel(ctx)
	if errors.Is(err, ErrModelNotTrained) {
		return Uncategorized, nil
	}
	if err != nil {
		return "", err
	}
	return cluster.Label(model.Predict(text)), nil
}

func (s *Service) currentModel(ctx context.Context) (*cluster.Model, error) {
	s.mu.RLock()
	model, loaded := s.model, s.loaded
	s.mu.RUnlock()
	if loaded {
		if model == nil {
			return nil, ErrModelNotTrained
		}
		return model, nil
	}

	model, err := s.store.LoadModel(ctx)
	if err != nil && !errors.Is(err, ErrModelNotTrained) {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.model, s.loaded = model, true
	}
	if s.model == nil {
		return nil, ErrModelNotTrained
	}
	return s.model, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", ErrInvalidInput, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s is invalid", ErrInvalidInput, fe.Field())
	}
}
