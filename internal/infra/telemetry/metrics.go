package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhook_events_total", Help: "Inbound webhook events by type and outcome"},
		[]string{"type", "outcome"},
	)
	PushesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "line_pushes_total", Help: "Outbound LINE pushes by result"},
		[]string{"result"},
	)
	InvitesTotal    = prometheus.NewCounter(prometheus.CounterOpts{Name: "assignments_invited_total", Help: "Invitations created or refreshed"})
	MatchesStarted  = prometheus.NewCounter(prometheus.CounterOpts{Name: "matches_started_total", Help: "Matches started"})
	MatchesExtended = prometheus.NewCounter(prometheus.CounterOpts{Name: "matches_extended_total", Help: "Match extensions applied"})
	MatchesEnded    = prometheus.NewCounter(prometheus.CounterOpts{Name: "matches_ended_total", Help: "Matches ended"})
	RemindersFired  = prometheus.NewCounter(prometheus.CounterOpts{Name: "reminders_fired_total", Help: "End-of-match reminders sent"})
	RemindersStale  = prometheus.NewCounter(prometheus.CounterOpts{Name: "reminders_stale_total", Help: "Reminders dropped because the match already ended"})
)

// Webhook event outcomes.
const (
	OutcomeApplied   = "applied"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeSkipped   = "skipped"
)

// Handler exposes the /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			WebhookEvents,
			PushesSent,
			InvitesTotal,
			MatchesStarted,
			MatchesExtended,
			MatchesEnded,
			RemindersFired,
			RemindersStale,
		)
	})
	return promhttp.Handler()
}
