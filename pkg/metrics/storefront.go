package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records the outcomes of the storefront's external calls:
// recommendation fetches against the hosted model and cart writes against
// the document store.
type StorefrontMetrics struct {
	recommendationDuration *prometheus.HistogramVec
	recommendationOutcome  *prometheus.CounterVec
	cartMutations          *prometheus.CounterVec
	checkoutOrders         prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	recommendationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommendation_call_duration_seconds",
		Help:    "Duration of hosted recommendation calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	recommendationOutcome := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_calls_total",
		Help: "Recommendation calls by outcome.",
	}, []string{"outcome"})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation and outcome.",
	}, []string{"op", "outcome"})
	checkoutOrders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_orders_total",
		Help: "Orders placed through checkout.",
	})
	reg.MustRegister(recommendationDuration, recommendationOutcome, cartMutations, checkoutOrders)
	return &StorefrontMetrics{
		recommendationDuration: recommendationDuration,
		recommendationOutcome:  recommendationOutcome,
		cartMutations:          cartMutations,
		checkoutOrders:         checkoutOrders,
	}
}

// ObserveRecommendation records one recommendation call with its outcome.
func (m *StorefrontMetrics) ObserveRecommendation(outcome string, duration time.Duration) {
	if m == nil || m.recommendationDuration == nil {
		return
	}
	label := normalizeLabel(outcome)
	m.recommendationDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.recommendationOutcome.WithLabelValues(label).Inc()
}

// IncCartMutation increments the cart mutation counter.
func (m *StorefrontMetrics) IncCartMutation(op, outcome string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op), normalizeLabel(outcome)).Inc()
}

// IncCheckoutOrder counts one placed order.
func (m *StorefrontMetrics) IncCheckoutOrder() {
	if m == nil || m.checkoutOrders == nil {
		return
	}
	m.checkoutOrders.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
