package domain

import "errors"

// BudgetAction is an administrative change to an ad's budget.
type BudgetAction string

const (
	ActionUpdateBudget BudgetAction = "update_budget"
	ActionResetSpent   BudgetAction = "reset_spent"
	ActionAddBudget    BudgetAction = "add_budget"
)

var (
	ErrUnknownAction = errors.New("unknown budget action")
	ErrInvalidBudget = errors.New("invalid budget amount")
)

// ApplyBudgetAction mutates the budget fields of the ad. update_budget needs
// a non-negative amount and add_budget a positive one; reset_spent ignores
// amount. The active flag is never touched.
func (a *Advertisement) ApplyBudgetAction(action BudgetAction, amount *int64) error {
	switch action {
	case ActionUpdateBudget:
		if amount == nil || *amount < 0 {
			return ErrInvalidBudget
		}
		a.Budget = *amount
	case ActionResetSpent:
		a.Spent = 0
	case ActionAddBudget:
		if amount == nil || *amount <= 0 {
			return ErrInvalidBudget
		}
		a.Budget += *amount
	default:
		return ErrUnknownAction
	}
	return nil
}
