package port

// BillingMetrics receives counters from the billing and event paths.
type BillingMetrics interface {
	ClickBilled(cost int64)
	BillingRejected(reason string)
	AdsDeactivated(source string, n int64)
	EventRecorded(kind string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ClickBilled(int64) {}
func (NopMetrics) BillingRejected(string) {}
func (NopMetrics) AdsDeactivated(string, int64) {}
func (NopMetrics) EventRecorded(string) {}
