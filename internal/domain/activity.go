package domain

import "context"

// Activity представляет внеклассное занятие со списком записавшихся.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant сообщает, записан ли email на занятие.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull сообщает, исчерпана ли вместимость занятия.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone возвращает глубокую копию занятия.
func (a *Activity) Clone() *Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return &Activity{
		Name:            a.Name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// SignupResult подтверждает успешную запись.
type SignupResult struct {
	ActivityName string
	Email        string
	// Participants - размер списка после записи.
	Participants int
}

// ActivityRepository определяет контракт хранилища занятий.
type ActivityRepository interface {
	// List возвращает снимок всех занятий по имени.
	List(ctx context.Context) (map[string]*Activity, error)
	// Update выполняет fn над занятием атомарно относительно других Update.
	Update(ctx context.Context, name string, fn func(activity *Activity) error) error
}
