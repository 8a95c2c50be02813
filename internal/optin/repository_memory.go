package optin

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	optins []*OptIn
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, o *OptIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.optins = append(r.optins, o)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*OptIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*OptIn, len(r.optins))
	copy(out, r.optins)
	return out, nil
}
