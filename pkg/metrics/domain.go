package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DomainMetrics counts the tracker's business events.
type DomainMetrics struct {
	visits        prometheus.Counter
	registrations prometheus.Counter
	logins        *prometheus.CounterVec
}

// NewDomainMetrics registers the domain counters on the provided registerer.
func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	if reg == nil {
		return &DomainMetrics{}
	}
	visits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "visits_recorded_total",
		Help: "Island visits recorded by users.",
	})
	registrations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "user_registrations_total",
		Help: "Successful user registrations.",
	})
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Login attempts by result.",
	}, []string{"result"})
	reg.MustRegister(visits, registrations, logins)
	return &DomainMetrics{
		visits:        visits,
		registrations: registrations,
		logins:        logins,
	}
}

func (d *DomainMetrics) IncVisit() {
	if d == nil || d.visits == nil {
		return
	}
	d.visits.Inc()
}

func (d *DomainMetrics) IncRegistration() {
	if d == nil || d.registrations == nil {
		return
	}
	d.registrations.Inc()
}

// IncLogin counts a login attempt as "success" or "failure".
func (d *DomainMetrics) IncLogin(success bool) {
	if d == nil || d.logins == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	d.logins.WithLabelValues(result).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
