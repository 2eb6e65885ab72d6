// Package savings compares a standard amortization schedule against an
// accelerated one and reports the time and interest saved.
package savings

import (
	"fmt"

	"github.com/loantools/payoff-planner/pkg/constants"
	"github.com/loantools/payoff-planner/pkg/datetime"
	"github.com/loantools/payoff-planner/pkg/schedule"
)

// Summary holds the savings of an accelerated schedule relative to the
// standard one. MonthsSaved can be zero or negative when the acceleration
// options are no-ops.
type Summary struct {
	MonthsSaved     int
	YearsSaved      int
	RemainingMonths int
	InterestSaved   float64
}

// Compare derives the savings between two completed schedules. The month
// count uses an average month length of 30.44 days applied to the payoff-date
// difference, so it is an approximation accurate to within rounding.
func Compare(standard, accelerated *schedule.Result) Summary {
	monthsSaved := datetime.ApproxMonthsBetween(accelerated.PayoffDate, standard.PayoffDate)
	return Summary{
		MonthsSaved:     monthsSaved,
		YearsSaved:      monthsSaved / constants.MonthsPerYear,
		RemainingMonths: monthsSaved % constants.MonthsPerYear,
		InterestSaved:   standard.TotalInterest - accelerated.TotalInterest,
	}
}

// TimeSavedText renders the time savings as human-readable text, e.g.
// "4 years, 1 month". It returns "No time saved" when nothing was saved.
func (s Summary) TimeSavedText() string {
	if s.MonthsSaved <= 0 {
		return "No time saved"
	}

	var text string
	if s.YearsSaved > 0 {
		text = fmt.Sprintf("%d %s", s.YearsSaved, pluralize("year", s.YearsSaved))
	}
	if s.RemainingMonths > 0 {
		if text != "" {
			text += ", "
		}
		text += fmt.Sprintf("%d %s", s.RemainingMonths, pluralize("month", s.RemainingMonths))
	}
	return text
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
