package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the roster metrics on a private prometheus registry.
// A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	Resolutions     *prometheus.CounterVec
	OverrideWrites  *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shiftmate_resolutions_total",
				Help: "Roster resolutions by source of the morning pick (rotation or override)",
			},
			[]string{"source"},
		),

		OverrideWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shiftmate_override_writes_total",
				Help: "Override edits by operation",
			},
			[]string{"op"},
		),

		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shiftmate_notifications_total",
				Help: "Notification attempts by notifier and result",
			},
			[]string{"notifier", "result"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shiftmate_http_request_duration_seconds",
				Help:    "HTTP request latency by route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}

	r.reg.MustRegister(
		r.Resolutions,
		r.OverrideWrites,
		r.Notifications,
		r.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Registry) ObserveResolution(overridden bool) {
	if r == nil {
		return
	}
	source := "rotation"
	if overridden {
		source = "override"
	}
	r.Resolutions.WithLabelValues(source).Inc()
}

func (r *Registry) ObserveOverrideWrite(op string) {
	if r == nil {
		return
	}
	r.OverrideWrites.WithLabelValues(op).Inc()
}

func (r *Registry) ObserveNotification(notifier string, err error) {
	if r == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.Notifications.WithLabelValues(notifier, result).Inc()
}

func (r *Registry) ObserveRequest(route, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.RequestDuration.WithLabelValues(route, status).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the prometheus text format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
