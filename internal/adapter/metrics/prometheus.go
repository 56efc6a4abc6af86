package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Billing contains Prometheus metrics for ad events and click billing. It
// implements port.BillingMetrics.
type Billing struct {
	clicksBilled  prometheus.Counter
	billedAmount  prometheus.Counter
	rejections    *prometheus.CounterVec
	deactivations *prometheus.CounterVec
	events        *prometheus.CounterVec
}

// NewBilling registers the collectors on reg.
func NewBilling(reg prometheus.Registerer) *Billing {
	f := promauto.With(reg)
	return &Billing{
		clicksBilled: f.NewCounter(prometheus.CounterOpts{
			Name: "jeju_ads_clicks_billed_total",
			Help: "Total number of clicks charged to an ad budget",
		}),
		billedAmount: f.NewCounter(prometheus.CounterOpts{
			Name: "jeju_ads_billed_amount_total",
			Help: "Total currency units charged for clicks",
		}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jeju_ads_billing_rejections_total",
			Help: "Click charges refused, by reason",
		}, []string{"reason"}),
		deactivations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jeju_ads_deactivations_total",
			Help: "Ads switched off because their budget ran out",
		}, []string{"source"}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jeju_ads_events_total",
			Help: "Recorded ad events, by type",
		}, []string{"type"}),
	}
}

func (m *Billing) ClickBilled(cost int64) {
	m.clicksBilled.Inc()
	m.billedAmount.Add(float64(cost))
}

func (m *Billing) BillingRejected(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *Billing) AdsDeactivated(source string, n int64) {
	m.deactivations.WithLabelValues(source).Add(float64(n))
}

func (m *Billing) EventRecorded(kind string) {
	m.events.WithLabelValues(kind).Inc()
}
