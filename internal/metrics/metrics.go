// Package metrics exposes Prometheus counters for the redirect path and
// the click pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedirectsTotal counts redirect requests by outcome:
	// "found", "not_found", "error".
	RedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "redirector",
		Name:      "redirects_total",
		Help:      "Redirect requests by outcome",
	}, []string{"outcome"})

	// ClicksDropped counts click events dropped because the recorder
	// buffer was full.
	ClicksDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "redirector",
		Name:      "clicks_dropped_total",
		Help:      "Click events dropped due to a full recorder buffer",
	})

	// ClickFailures counts recorder-side failures by stage:
	// "geolocation", "write".
	ClickFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "redirector",
		Name:      "click_failures_total",
		Help:      "Click recorder failures by stage",
	}, []string{"stage"})
)
