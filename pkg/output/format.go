// Package output provides utilities for formatting and displaying schedule
// comparisons.
package output

import (
	"fmt"

	"github.com/loantools/payoff-planner/pkg/constants"
	"github.com/loantools/payoff-planner/pkg/savings"
	"github.com/loantools/payoff-planner/pkg/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintSchedule outputs the summary totals for a single schedule.
func PrintSchedule(name string, result *schedule.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- %s schedule ---\n", name)
	_, _ = p.Printf("Periodic payment:  $%.2f\n", result.PeriodicPayment)
	_, _ = p.Printf("Payments:          %d\n", result.TotalPaymentCount)
	_, _ = p.Printf("Total interest:    $%.2f\n", result.TotalInterest)
	fmt.Printf("Payoff date:       %s\n", result.PayoffDate.Format(constants.DateTimeLayout))
}

// PrintComparison outputs both schedule summaries followed by the savings the
// accelerated schedule achieves over the standard one.
func PrintComparison(standard, accelerated *schedule.Result, summary savings.Summary) {
	p := message.NewPrinter(language.English)
	PrintSchedule("Standard", standard)
	fmt.Printf("\n")
	PrintSchedule("Accelerated", accelerated)
	fmt.Printf("\n--- Savings ---\n")
	fmt.Printf("Time saved:        %s\n", summary.TimeSavedText())
	_, _ = p.Printf("Interest saved:    $%.2f\n", summary.InterestSaved)
}
