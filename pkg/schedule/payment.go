package schedule

import (
	"math"

	"github.com/loantools/payoff-planner/pkg/constants"
)

// CalculateMonthlyPayment calculates the monthly payment for a fully-amortizing
// loan using the standard annuity formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// CalculateInterestPayment calculates the interest accrued on a balance over
// one month at the given annual rate.
func CalculateInterestPayment(balance, annualInterestRate float64) float64 {
	return balance * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
