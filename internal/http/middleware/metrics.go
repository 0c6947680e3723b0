package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)

	TapsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "taps_total",
			Help: "Total successful tap actions",
		},
	)
	DonationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "donations_total",
			Help: "Total successful donations",
		},
	)
	ProjectsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "projects_completed_total",
			Help: "Total projects that reached their funding target",
		},
	)
	UpgradePurchases = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upgrade_purchases_total",
			Help: "Total upgrade purchases",
		},
	)
)

func init() {
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(TapsTotal)
	prometheus.MustRegister(DonationsTotal)
	prometheus.MustRegister(ProjectsCompleted)
	prometheus.MustRegister(UpgradePurchases)
}
