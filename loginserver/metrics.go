package loginserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sso_login"

var (
	pageRenders = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Total number of login pages rendered",
		},
	)

	submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of login form submissions by outcome",
		},
		[]string{"outcome"}, // "invalid" or "forwarded"
	)

	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of required field failures",
		},
		[]string{"field"},
	)

	brandingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "branding_failures_total",
			Help:      "Total number of pages whose service parameter did not resolve to a tenant origin",
		},
	)
)
