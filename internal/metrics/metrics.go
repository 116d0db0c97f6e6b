// Package metrics содержит Prometheus-метрики записи на занятия.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы записи (значения лейбла outcome)
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeAlreadySignedUp = "already_signed_up"
	OutcomeFull            = "full"
	OutcomeError           = "error"
)

// Signup собирает метрики операции записи.
type Signup struct {
	attempts     *prometheus.CounterVec
	participants *prometheus.GaugeVec
}

// NewSignup регистрирует метрики в reg.
func NewSignup(reg prometheus.Registerer) *Signup {
	factory := promauto.With(reg)

	return &Signup{
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Total number of signup attempts by activity and outcome",
			},
			[]string{"activity", "outcome"},
		),
		participants: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "activity_participants",
				Help: "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
}

// ObserveAttempt учитывает одну попытку записи.
func (s *Signup) ObserveAttempt(activity, outcome string) {
	s.attempts.WithLabelValues(activity, outcome).Inc()
}

// SetParticipants выставляет текущий размер списка занятия.
func (s *Signup) SetParticipants(activity string, count int) {
	s.participants.WithLabelValues(activity).Set(float64(count))
}
