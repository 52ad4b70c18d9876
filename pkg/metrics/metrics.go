// Package metrics holds the application counters exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UserRegistrations counts successful signups.
	UserRegistrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_user_registrations_total",
		Help: "Number of accounts created.",
	})

	// UserLogins counts successful session logins.
	UserLogins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_user_logins_total",
		Help: "Number of successful logins.",
	})

	// PostsCreated counts created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_posts_created_total",
		Help: "Number of posts created.",
	})
)
