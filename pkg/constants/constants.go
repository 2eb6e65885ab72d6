// Package constants provides shared constants for payoff-planner.
package constants

// DateTimeLayout is the year-month format expected in config files and used
// to key monthly ledger entries.
const DateTimeLayout = "2006-01"

// DayLayout is the full-date format used for bi-weekly ledger entries.
const DayLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day count used for the simple-daily interest
	// convention in bi-weekly mode
	DaysPerYear = 365

	// DaysPerBiweeklyPeriod is the length of one bi-weekly period
	DaysPerBiweeklyPeriod = 14

	// DaysPerMonth is the average month length used to approximate calendar
	// month distances between payoff dates
	DaysPerMonth = 30.44

	// BiweeklyExtraDivisor pro-rates a monthly extra payment across bi-weekly
	// periods. 12/26 ≈ 2.1667 would be the exact conversion; 2.17 is kept for
	// parity with the established schedule output.
	BiweeklyExtraDivisor = 2.17

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Safety ceiling multipliers; see schedule.Generator.
const (
	// MonthlyCeilingFactor caps a monthly schedule at the loan's nominal
	// payment count
	MonthlyCeilingFactor = MonthsPerYear

	// BiweeklyCeilingFactor caps a bi-weekly schedule; doubled twice relative
	// to the monthly ceiling to accommodate the shorter period length
	BiweeklyCeilingFactor = MonthsPerYear * 2 * 2
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
