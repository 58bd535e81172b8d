// Package metrics exposes Prometheus counters for the press kit service and
// the HTTP routes that serve them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Reset token events.
const (
	ResetIssued   = "issued"
	ResetConsumed = "consumed"
	ResetExpired  = "expired"
	ResetInvalid  = "invalid"
)

// Recorder is what the services and the gRPC layer report into.
type Recorder interface {
	RecordAccountCreated()
	RecordLogin(success bool)
	RecordResetToken(event string)
	RecordSlugRetry()
	RecordSlugConflict()
	RecordView()
	RecordRPC(method, code string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	accountsCreated prometheus.Counter
	logins          *prometheus.CounterVec
	resetTokens     *prometheus.CounterVec
	slugRetries     prometheus.Counter
	slugConflicts   prometheus.Counter
	views           prometheus.Counter
	rpcs            *prometheus.CounterVec
}

// NewCollector builds a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "presskit_accounts_created_total",
			Help: "Accounts registered.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "presskit_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		resetTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "presskit_reset_tokens_total",
			Help: "Password reset token events.",
		}, []string{"event"}),
		slugRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "presskit_slug_retries_total",
			Help: "Slug writes retried after a unique violation.",
		}),
		slugConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "presskit_slug_conflicts_total",
			Help: "Slug writes that failed after the retry.",
		}),
		views: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "presskit_views_recorded_total",
			Help: "Press kit views recorded.",
		}),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "presskit_grpc_requests_total",
			Help: "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
	}

	reg.MustRegister(
		c.accountsCreated,
		c.logins,
		c.resetTokens,
		c.slugRetries,
		c.slugConflicts,
		c.views,
		c.rpcs,
	)

	return c
}

func (c *Collector) RecordAccountCreated() { c.accountsCreated.Inc() }

func (c *Collector) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordResetToken(event string) { c.resetTokens.WithLabelValues(event).Inc() }

func (c *Collector) RecordSlugRetry() { c.slugRetries.Inc() }

func (c *Collector) RecordSlugConflict() { c.slugConflicts.Inc() }

func (c *Collector) RecordView() { c.views.Inc() }

func (c *Collector) RecordRPC(method, code string) { c.rpcs.WithLabelValues(method, code).Inc() }

// Nop discards everything.
type Nop struct{}

func (Nop) RecordAccountCreated()         {}
func (Nop) RecordLogin(bool)              {}
func (Nop) RecordResetToken(string)       {}
func (Nop) RecordSlugRetry()              {}
func (Nop) RecordSlugConflict()           {}
func (Nop) RecordView()                   {}
func (Nop) RecordRPC(method, code string) {}
