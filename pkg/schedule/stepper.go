package schedule

import (
	"time"

	"github.com/loantools/payoff-planner/pkg/constants"
)

// stepper abstracts how a schedule advances through time: by one calendar
// month or by one 14-day span, each with its matching interest-accrual
// convention. Both modes share the ledger loop in Generator.run.
type stepper interface {
	// advance returns the date of the period following t.
	advance(t time.Time) time.Time

	// interest returns the interest accrued on balance over one period.
	interest(balance float64) float64

	// payment returns the scheduled payment per period.
	payment() float64

	// recurringExtra returns the per-period share of the extra monthly amount.
	recurringExtra() float64

	// ceiling returns the hard iteration cap for the given term.
	ceiling(termYears int) int
}

// monthlyStepper advances one calendar month at a time and accrues interest at
// the loan's monthly rate.
type monthlyStepper struct {
	annualRate     float64
	monthlyPayment float64
	extraMonthly   float64
}

func (s monthlyStepper) advance(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

func (s monthlyStepper) interest(balance float64) float64 {
	return CalculateInterestPayment(balance, s.annualRate)
}

func (s monthlyStepper) payment() float64 {
	return s.monthlyPayment
}

func (s monthlyStepper) recurringExtra() float64 {
	return s.extraMonthly
}

func (s monthlyStepper) ceiling(termYears int) int {
	return termYears * constants.MonthlyCeilingFactor
}

// biweeklyStepper advances 14 calendar days at a time, pays half the monthly
// payment per period, and accrues interest with a simple-daily convention.
// This is a deliberate approximation of true bi-weekly compounding, not a
// re-derivation of the monthly rate.
type biweeklyStepper struct {
	annualRate     float64
	monthlyPayment float64
	extraMonthly   float64
}

func (s biweeklyStepper) advance(t time.Time) time.Time {
	return t.AddDate(0, 0, constants.DaysPerBiweeklyPeriod)
}

func (s biweeklyStepper) interest(balance float64) float64 {
	dailyRate := s.annualRate / constants.PercentageMultiplier / constants.DaysPerYear
	return balance * dailyRate * constants.DaysPerBiweeklyPeriod
}

func (s biweeklyStepper) payment() float64 {
	return s.monthlyPayment / 2
}

func (s biweeklyStepper) recurringExtra() float64 {
	return s.extraMonthly / constants.BiweeklyExtraDivisor
}

func (s biweeklyStepper) ceiling(termYears int) int {
	return termYears * constants.BiweeklyCeilingFactor
}
