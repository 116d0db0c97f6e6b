package usecase

import (
	"context"
	"errors"

	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/metrics"
)

// ActivityUseCase реализует бизнес-логику записи на занятия.
type ActivityUseCase struct {
	activityRepo domain.ActivityRepository
	metrics      *metrics.Signup
}

// NewActivityUseCase создает новый экземпляр ActivityUseCase.
func NewActivityUseCase(activityRepo domain.ActivityRepository, m *metrics.Signup) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
		metrics:      m,
	}
}

// ListActivities возвращает снимок каталога.
func (uc *ActivityUseCase) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	return uc.activityRepo.List(ctx)
}

// Signup записывает email на занятие.
// Проверки: занятие существует, email еще не записан, есть свободные места.
func (uc *ActivityUseCase) Signup(ctx context.Context, activityName, email string) (*domain.SignupResult, error) {
	var participants int

	err := uc.activityRepo.Update(ctx, activityName, func(activity *domain.Activity) error {
		if activity.HasParticipant(email) {
			return domain.ErrAlreadySignedUp
		}

		if activity.IsFull() {
			return domain.ErrActivityFull
		}

		activity.Participants = append(activity.Participants, email)
		participants = len(activity.Participants)

		// Под блокировкой Update: значения gauge пишутся в порядке записей
		if uc.metrics != nil {
			uc.metrics.SetParticipants(activityName, participants)
		}
		return nil
	})

	uc.observe(activityName, err)
	if err != nil {
		return nil, err
	}

	return &domain.SignupResult{
		ActivityName: activityName,
		Email:        email,
		Participants: participants,
	}, nil
}

// ReportParticipants выставляет метрики размеров списков по текущему каталогу.
func (uc *ActivityUseCase) ReportParticipants(ctx context.Context) error {
	if uc.metrics == nil {
		return nil
	}

	activities, err := uc.activityRepo.List(ctx)
	if err != nil {
		return err
	}
	for name, activity := range activities {
		uc.metrics.SetParticipants(name, len(activity.Participants))
	}
	return nil
}

func (uc *ActivityUseCase) observe(activityName string, err error) {
	if uc.metrics == nil {
		return
	}

	switch {
	case err == nil:
		uc.metrics.ObserveAttempt(activityName, metrics.OutcomeSuccess)
	case errors.Is(err, domain.ErrActivityNotFound):
		// Лейбл по произвольному имени раздул бы кардинальность
		uc.metrics.ObserveAttempt("", metrics.OutcomeNotFound)
	case errors.Is(err, domain.ErrAlreadySignedUp):
		uc.metrics.ObserveAttempt(activityName, metrics.OutcomeAlreadySignedUp)
	case errors.Is(err, domain.ErrActivityFull):
		uc.metrics.ObserveAttempt(activityName, metrics.OutcomeFull)
	default:
		uc.metrics.ObserveAttempt(activityName, metrics.OutcomeError)
	}
}
