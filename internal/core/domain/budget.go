package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DefaultCostPerClick is the amount debited per billable click when the
// caller does not supply one.
const DefaultCostPerClick int64 = 1000

// MaxCostPerClick bounds a single click charge.
const MaxCostPerClick int64 = 1_000_000_000

// warningThreshold is the utilisation percentage at which an ad enters the
// warning state.
const warningThreshold = 80.0

var (
	ErrBudgetExhausted = errors.New("budget exhausted")
	ErrBudgetExceeded  = errors.New("charge would exceed budget")
	ErrSpendOverflow   = errors.New("charge would overflow spent")
)

// BudgetState is the coarse budget condition of an ad.
type BudgetState string

const (
	BudgetActive    BudgetState = "active"
	BudgetWarning   BudgetState = "warning"
	BudgetExhausted BudgetState = "exhausted"
	BudgetNoBudget  BudgetState = "no-budget"
)

// BudgetStatus describes the budget state with a readable message and the
// utilisation percentage, clamped to [0,100].
type BudgetStatus struct {
	State      BudgetState `json:"status"`
	Message    string      `json:"message"`
	Percentage float64     `json:"percentage"`
}

// Cost returns the amount owed for clicks at costPerClick. A non-positive
// costPerClick falls back to DefaultCostPerClick.
func Cost(clicks, costPerClick int64) int64 {
	if costPerClick <= 0 {
		costPerClick = DefaultCostPerClick
	}
	if clicks <= 0 {
		return 0
	}
	return clicks * costPerClick
}

// IsExhausted reports whether spend has reached a non-zero budget. The
// stored active flag is deliberately ignored.
func (a Advertisement) IsExhausted() bool {
	return a.Budget > 0 && a.Spent >= a.Budget
}

// Balance is the unspent part of the budget, never negative.
func (a Advertisement) Balance() int64 {
	return max(0, a.Budget-a.Spent)
}

// ExhaustionRate is the spent share of the budget in percent, capped at 100.
// Ads without a budget report 0.
func (a Advertisement) ExhaustionRate() float64 {
	if a.Budget <= 0 {
		return 0
	}
	return min(100, a.utilisation())
}

func (a Advertisement) utilisation() float64 {
	return max(0, float64(a.Spent)/float64(a.Budget)*100)
}

// BudgetStatus classifies the budget utilisation of the ad.
func (a Advertisement) BudgetStatus() BudgetStatus {
	if a.Budget <= 0 {
		return BudgetStatus{State: BudgetNoBudget, Message: "no budget set", Percentage: 0}
	}
	pct := a.utilisation()
	switch {
	case pct >= 100:
		return BudgetStatus{State: BudgetExhausted, Message: "budget exhausted", Percentage: 100}
	case pct >= warningThreshold:
		return BudgetStatus{State: BudgetWarning, Message: "budget nearly exhausted", Percentage: pct}
	default:
		return BudgetStatus{State: BudgetActive, Message: "ok", Percentage: pct}
	}
}

// AlertMessage returns an advertiser facing alert for the warning and
// exhausted states.
func (a Advertisement) AlertMessage() (string, bool) {
	status := a.BudgetStatus()
	switch status.State {
	case BudgetExhausted:
		return "budget exhausted, ad stopped", true
	case BudgetWarning:
		return fmt.Sprintf("%.1f%% of the ad budget has been spent", status.Percentage), true
	default:
		return "", false
	}
}

// IsEligible reports whether the ad may be served or billed at now.
// Both ends of the schedule are inclusive.
func (a Advertisement) IsEligible(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if now.Before(a.StartDate) || now.After(a.EndDate) {
		return false
	}
	return !a.IsExhausted()
}

// Charge debits one billable click. It fails without touching the ad when
// the budget is already exhausted or the charge would overshoot it. When the
// charge uses up the budget the ad is switched off and deactivated is true.
func (a *Advertisement) Charge(cost int64) (deactivated bool, err error) {
	if a.IsExhausted() {
		return false, ErrBudgetExhausted
	}
	switch {
	case a.Budget > 0 && cost > a.Budget-a.Spent:
		return false, ErrBudgetExceeded
	case a.Budget <= 0 && cost > math.MaxInt64-a.Spent:
		return false, ErrSpendOverflow
	}
	a.Spent += cost
	a.ClickCount++
	if a.IsExhausted() && a.IsActive {
		a.IsActive = false
		return true, nil
	}
	return false, nil
}
