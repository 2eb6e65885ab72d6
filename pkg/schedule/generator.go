package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/loantools/payoff-planner/pkg/constants"
	"github.com/loantools/payoff-planner/pkg/datetime"
	"github.com/loantools/payoff-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrSafetyCeiling is returned when a schedule reaches its hard iteration cap
// before the balance reaches zero. This signals an under-amortizing input (the
// periodic payment does not cover interest) rather than a valid schedule.
var ErrSafetyCeiling = errors.New("payment schedule safety ceiling reached before payoff")

// Generator produces amortization schedules.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Standard generates the baseline monthly amortization schedule for a loan
// with no acceleration applied.
func (g *Generator) Standard(loan Loan) (*Result, error) {
	monthlyPayment := CalculateMonthlyPayment(loan.Principal, loan.InterestRate, loan.TermYears*constants.MonthsPerYear)
	step := monthlyStepper{
		annualRate:     loan.InterestRate,
		monthlyPayment: monthlyPayment,
	}
	return g.run(loan, Acceleration{}, step)
}

// Accelerated generates an amortization schedule with every active
// acceleration strategy applied within the same pass. When options.Biweekly is
// set the schedule advances by 14-day periods at half the monthly payment;
// otherwise it advances monthly.
func (g *Generator) Accelerated(loan Loan, options Acceleration) (*Result, error) {
	monthlyPayment := CalculateMonthlyPayment(loan.Principal, loan.InterestRate, loan.TermYears*constants.MonthsPerYear)
	var step stepper
	if options.Biweekly {
		step = biweeklyStepper{
			annualRate:     loan.InterestRate,
			monthlyPayment: monthlyPayment,
			extraMonthly:   options.ExtraMonthly,
		}
	} else {
		step = monthlyStepper{
			annualRate:     loan.InterestRate,
			monthlyPayment: monthlyPayment,
			extraMonthly:   options.ExtraMonthly,
		}
	}
	return g.run(loan, options, step)
}

// run drives the shared ledger loop for both stepping modes.
func (g *Generator) run(loan Loan, options Acceleration, step stepper) (*Result, error) {
	startDate, err := datetime.ParsePeriod(loan.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid loan start date %q: %w", loan.StartDate, err)
	}

	// A lump sum with a missing or malformed date degrades to a strategy that
	// never fires.
	var lumpSumDate time.Time
	lumpSumPending := false
	if options.LumpSum > 0 {
		lumpSumDate, err = datetime.ParsePeriod(options.LumpSumDate)
		if err == nil {
			lumpSumPending = true
		} else {
			g.logger.Debug(fmt.Sprintf("lump sum of %.2f has unusable date %q and will not be applied", options.LumpSum, options.LumpSumDate),
				zap.String("op", "schedule.run"),
			)
		}
	}

	result := &Result{
		PeriodicPayment: step.payment(),
		PayoffDate:      startDate,
	}

	balance := loan.Principal
	if mathutil.IsZero(balance) {
		// Nothing left to amortize.
		return result, nil
	}

	maxPeriods := step.ceiling(loan.TermYears)
	cumulativeInterest := 0.00
	date := startDate
	var lastAnnualExtra time.Time

	for number := 1; number <= maxPeriods; number++ {
		interest := step.interest(balance)
		principal := step.payment() - interest
		extra := step.recurringExtra()

		if lumpSumPending && !date.Before(lumpSumDate) {
			g.logger.Debug(fmt.Sprintf("%s: applying lump sum payment %.2f", date.Format(constants.DateTimeLayout), options.LumpSum),
				zap.String("op", "schedule.run"),
			)
			extra += options.LumpSum
			lumpSumPending = false
		}

		if options.AnnualExtra > 0 && int(date.Month())-1 == options.AnnualExtraMonth {
			// Multiple bi-weekly periods can fall in the same month, so the
			// once-per-year check compares both month and year.
			if lastAnnualExtra.IsZero() || !datetime.SameYearMonth(lastAnnualExtra, date) {
				extra += options.AnnualExtra
				lastAnnualExtra = date
			}
		}

		// Final-period truncation: base principal and extra together may never
		// draw the balance below zero. The base principal is capped first, then
		// the extra to whatever remains; excess is discarded.
		principal = mathutil.Min(principal, balance)
		if principal+extra > balance {
			extra = balance - principal
		}

		balance -= principal + extra
		if mathutil.IsZero(balance) {
			// We will get machine error otherwise so just set to 0.
			balance = 0.00
		}
		cumulativeInterest += interest

		result.Records = append(result.Records, PaymentRecord{
			Number:             number,
			Date:               date,
			Payment:            principal + interest + extra,
			Principal:          principal,
			Interest:           interest,
			Extra:              extra,
			Balance:            balance,
			CumulativeInterest: cumulativeInterest,
		})

		if balance == 0 {
			break
		}
		date = step.advance(date)
	}

	if balance > 0 {
		return nil, fmt.Errorf("balance %.2f remains after %d periods: %w", balance, maxPeriods, ErrSafetyCeiling)
	}

	result.TotalInterest = cumulativeInterest
	result.TotalPaymentCount = len(result.Records)
	result.PayoffDate = result.Records[len(result.Records)-1].Date
	return result, nil
}
