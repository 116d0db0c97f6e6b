package domain

import "context"

// ActivityUseCase определяет бизнес-логику каталога занятий.
type ActivityUseCase interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	Signup(ctx context.Context, activityName, email string) (*SignupResult, error)
}
