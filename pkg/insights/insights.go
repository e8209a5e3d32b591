package insights

import (
	"time"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Insight is one observation about the user's finances.
type Insight struct {
	Kind    Kind   `json:"kind" example:"warning"`
	Title   string `json:"title" example:"Spending increased"`
	Message string `json:"message" example:"You spent 23.5% more than last month."`
}

// Thresholds for the generated insights, in percent.
var (
	spendingChangeThreshold = decimal.NewFromInt(10)
	healthySavingsRate      = decimal.NewFromInt(20)
)

// Generate derives insights from the current and previous month's summaries,
// the projected balance and the goals. Insights are ordered: spending change,
// top category, savings rate, projected balance, goals.
func Generate(current, previous Summary, projected decimal.Decimal, goals []models.Goal, now time.Time, f Formatter) []Insight {
	insights := []Insight{}

	if change, ok := spendingChange(current, previous); ok {
		switch {
		case change.GreaterThan(spendingChangeThreshold):
			insights = append(insights, Insight{
				Kind:    KindWarning,
				Title:   "Spending increased",
				Message: f.printer.Sprintf("You spent %s more than last month.", f.Percent(change)),
			})
		case change.LessThan(spendingChangeThreshold.Neg()):
			insights = append(insights, Insight{
				Kind:    KindSuccess,
				Title:   "Spending decreased",
				Message: f.printer.Sprintf("You spent %s less than last month.", f.Percent(change.Abs())),
			})
		default:
			insights = append(insights, Insight{
				Kind:    KindInfo,
				Title:   "Spending stable",
				Message: f.printer.Sprintf("Your spending is within %s of last month.", f.Percent(spendingChangeThreshold)),
			})
		}
	}

	if len(current.ByCategory) > 0 {
		top := current.ByCategory[0]
		insights = append(insights, Insight{
			Kind:    KindInfo,
			Title:   "Top category",
			Message: f.printer.Sprintf("%s accounts for %s of your spending (%s).", top.CategoryName, f.Percent(top.Percent), f.Money(top.Amount)),
		})
	}

	if current.TotalReceipts.IsPositive() {
		rate := current.Balance.Mul(hundred).Div(current.TotalReceipts).Round(1)

		switch {
		case rate.IsNegative():
			insights = append(insights, Insight{
				Kind:    KindWarning,
				Title:   "Spending exceeds income",
				Message: f.printer.Sprintf("You spent %s more than you earned this month.", f.Money(current.Balance.Neg())),
			})
		case rate.GreaterThanOrEqual(healthySavingsRate):
			insights = append(insights, Insight{
				Kind:    KindSuccess,
				Title:   "Healthy savings rate",
				Message: f.printer.Sprintf("You kept %s of your income this month.", f.Percent(rate)),
			})
		default:
			insights = append(insights, Insight{
				Kind:    KindInfo,
				Title:   "Savings rate",
				Message: f.printer.Sprintf("You kept %s of your income this month.", f.Percent(rate)),
			})
		}
	}

	if projected.IsNegative() {
		insights = append(insights, Insight{
			Kind:    KindWarning,
			Title:   "Negative projected balance",
			Message: f.printer.Sprintf("Your balance is projected to reach %s by the end of the cycle.", f.Money(projected)),
		})
	}

	for _, g := range goals {
		switch {
		case g.Type == models.GoalTypeSpending:
			if g.Exceeded() {
				insights = append(insights, Insight{
					Kind:    KindWarning,
					Title:   "Spending limit exceeded",
					Message: f.printer.Sprintf("You spent %s on %s, %s over the limit.", f.Money(g.CurrentAmount), g.Name, f.Money(g.CurrentAmount.Sub(g.TargetAmount))),
				})
			}
		case g.Reached():
			insights = append(insights, Insight{
				Kind:    KindSuccess,
				Title:   "Goal reached",
				Message: f.printer.Sprintf("You reached your goal %s.", g.Name),
			})
		case g.Overdue(now):
			insights = append(insights, Insight{
				Kind:    KindWarning,
				Title:   "Goal behind schedule",
				Message: f.printer.Sprintf("Your goal %s passed its deadline at %s of the target.", g.Name, f.Percent(g.Progress().Mul(hundred))),
			})
		}
	}

	return insights
}

// spendingChange returns the change of the spending against the previous
// month in percent. It is undefined without spending in the previous month.
func spendingChange(current, previous Summary) (decimal.Decimal, bool) {
	before := previous.Spending()
	if !before.IsPositive() {
		return decimal.Zero, false
	}

	return current.Spending().Sub(before).Mul(hundred).Div(before).Round(1), true
}
