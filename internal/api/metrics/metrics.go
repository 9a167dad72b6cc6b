// Package metrics defines and registers all custom Prometheus metrics for the
// off-market listing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "offmarket"

// ── Property metrics ──────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - listing_type: "sale" or "rent"
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created, by listing type.",
	},
	[]string{"listing_type"},
)

// PropertiesDeletedTotal counts listings removed through the back office.
var PropertiesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_deleted_total",
		Help:      "Total number of property listings deleted.",
	},
)

// PropertyViewsTotal counts detail-page views across all listings.
var PropertyViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "property_views_total",
		Help:      "Total number of property detail views recorded.",
	},
)

// PropertyInquiriesTotal counts contact-info reveals by logged-in members.
var PropertyInquiriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "property_inquiries_total",
		Help:      "Total number of property inquiries recorded.",
	},
)

// ── Alert metrics ─────────────────────────────────────────────────────────────

// AlertMatchesTotal counts alert hits produced by the matching workers.
var AlertMatchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_matches_total",
		Help:      "Total number of alert matches recorded for new listings.",
	},
)

// AlertQueueDepth tracks listings waiting for alert matching.
var AlertQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alert_queue_depth",
		Help:      "Current number of listings pending in the alert-matching queue.",
	},
)
