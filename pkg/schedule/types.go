// Package schedule computes loan amortization schedules under a standard
// monthly plan and under any combination of acceleration strategies (extra
// monthly payment, bi-weekly payment frequency, one-time lump sum, recurring
// annual extra payment).
package schedule

import "time"

// Loan defines the terms of a fully-amortizing loan. It is read-only to the
// generator.
type Loan struct {
	Principal    float64
	InterestRate float64 // annual rate in percent, e.g. 6.0
	TermYears    int
	StartDate    string // year-month, e.g. "2024-01"
}

// Acceleration holds the optional payoff acceleration strategies. The zero
// value means no acceleration; all strategies are independent toggles and may
// combine within the same schedule.
type Acceleration struct {
	ExtraMonthly     float64
	Biweekly         bool
	LumpSum          float64
	LumpSumDate      string // year-month; required for LumpSum to fire
	AnnualExtra      float64
	AnnualExtraMonth int // 0 = January .. 11 = December
}

// Active reports whether any acceleration strategy is enabled.
func (a Acceleration) Active() bool {
	return a.ExtraMonthly > 0 || a.Biweekly || a.LumpSum > 0 || a.AnnualExtra > 0
}

// PaymentRecord is one row of the amortization ledger. Principal excludes any
// extra amount applied in the same period; Payment is always
// Principal + Interest + Extra.
type PaymentRecord struct {
	Number             int
	Date               time.Time
	Payment            float64
	Principal          float64
	Interest           float64
	Extra              float64
	Balance            float64
	CumulativeInterest float64
}

// Result holds a completed amortization schedule and its summary totals. It is
// produced fresh per generator call and never mutated afterwards.
type Result struct {
	Records           []PaymentRecord
	PeriodicPayment   float64
	TotalInterest     float64
	TotalPaymentCount int
	PayoffDate        time.Time
}
