// Package metrics defines the planner's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts API requests by method and response status.
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "planner_http_requests_total",
		Help: "Planner API requests by method and status code.",
	},
	[]string{"method", "status"},
)

// ItemsAdded counts shopping-list items created through the API.
var ItemsAdded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "planner_items_added_total",
		Help: "Shopping-list items added through the API.",
	},
)

// SnapshotsSaved counts stored planner snapshots.
var SnapshotsSaved = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "planner_snapshots_saved_total",
		Help: "Planner snapshots saved.",
	},
)

// BotMessages counts handled Telegram messages by outcome.
var BotMessages = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "planner_bot_messages_total",
		Help: "Handled Telegram messages by outcome.",
	},
	[]string{"result"},
)
