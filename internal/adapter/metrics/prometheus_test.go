package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBillingCounters(t *testing.T) {
	m := NewBilling(prometheus.NewRegistry())

	m.ClickBilled(1000)
	m.ClickBilled(500)
	m.BillingRejected("exhausted")
	m.AdsDeactivated("billing", 1)
	m.AdsDeactivated("sweep", 3)
	m.EventRecorded("impression")
	m.EventRecorded("impression")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.clicksBilled))
	assert.Equal(t, 1500.0, testutil.ToFloat64(m.billedAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("exhausted")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.rejections.WithLabelValues("exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deactivations.WithLabelValues("billing")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.deactivations.WithLabelValues("sweep")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("impression")))
}
