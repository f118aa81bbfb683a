// Package metrics defines and registers the custom Prometheus metrics of the
// recipe book. Metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipebook"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// RecipesCreatedTotal counts created recipes.
// Label:
//   - difficulty: easy, medium or hard
var RecipesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created, by difficulty.",
	},
	[]string{"difficulty"},
)

// BookmarkTogglesTotal counts bookmark toggles.
// Label:
//   - state: "added" or "removed"
var BookmarkTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_toggles_total",
		Help:      "Total number of bookmark toggles, by resulting state.",
	},
	[]string{"state"},
)

// ReportsGeneratedTotal counts rendered report documents.
// Labels:
//   - format: xlsx, xls or pdf
//   - selector: category or user
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of report documents generated.",
	},
	[]string{"format", "selector"},
)

// StoreCorruptTotal counts namespaces that failed to parse on load.
// Label:
//   - collection: the namespace key
var StoreCorruptTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_corrupt_total",
		Help:      "Total number of corrupt collection reads.",
	},
	[]string{"collection"},
)
