package repository

import (
	"context"
	"fmt"
	"sync"

	"activity-signup-service/internal/domain"
)

// ActivityRepository хранит каталог занятий в памяти процесса.
// Все изменения сериализуются одной блокировкой на запись.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityRepository создает хранилище, заполненное копией seed.
func NewActivityRepository(seed []*domain.Activity) (*ActivityRepository, error) {
	activities := make(map[string]*domain.Activity, len(seed))
	for _, activity := range seed {
		if _, exists := activities[activity.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate activity %q", domain.ErrMalformedCatalog, activity.Name)
		}
		activities[activity.Name] = activity.Clone()
	}

	return &ActivityRepository{
		activities: activities,
	}, nil
}

// List возвращает глубокую копию всех занятий.
func (r *ActivityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		result[name] = activity.Clone()
	}

	return result, nil
}

// Update вызывает fn для занятия под блокировкой на запись.
// Если fn вернула ошибку, изменения отбрасываются.
func (r *ActivityRepository) Update(ctx context.Context, name string, fn func(activity *domain.Activity) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	draft := activity.Clone()
	if err := fn(draft); err != nil {
		return err
	}

	if len(draft.Participants) > draft.MaxParticipants {
		return fmt.Errorf("activity %q would exceed capacity", name)
	}
	r.activities[name] = draft

	return nil
}
