// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/loantools/payoff-planner/pkg/constants"
	"github.com/loantools/payoff-planner/pkg/datetime"
	"github.com/loantools/payoff-planner/pkg/schedule"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for payoff-planner.
type Configuration struct {
	Loan         LoanConfig
	Acceleration AccelerationConfig `yaml:"acceleration,omitempty"`
	Logging      LoggingConfig      `yaml:"logging,omitempty"`
}

// LoanConfig holds the terms of the loan to schedule.
type LoanConfig struct {
	Principal    float64
	InterestRate float64
	TermYears    int
	StartDate    string
}

// AccelerationConfig holds the optional payoff acceleration strategies.
type AccelerationConfig struct {
	ExtraMonthly     float64 `yaml:"extraMonthly,omitempty"`
	Biweekly         bool    `yaml:"biweekly,omitempty"`
	LumpSum          float64 `yaml:"lumpSum,omitempty"`
	LumpSumDate      string  `yaml:"lumpSumDate,omitempty"`
	AnnualExtra      float64 `yaml:"annualExtra,omitempty"`
	AnnualExtraMonth int     `yaml:"annualExtraMonth,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate rejects inputs the scheduling engine does not re-validate. The
// engine assumes a positive principal and term and a parseable start date.
func (conf *Configuration) Validate() error {
	if conf.Loan.Principal <= 0 {
		return fmt.Errorf("loan principal must be positive, got %.2f", conf.Loan.Principal)
	}
	if conf.Loan.TermYears <= 0 {
		return fmt.Errorf("loan term must be a positive number of years, got %d", conf.Loan.TermYears)
	}
	if conf.Loan.InterestRate < 0 || conf.Loan.InterestRate > 100 {
		return fmt.Errorf("loan interest rate must be between 0 and 100 percent, got %.2f", conf.Loan.InterestRate)
	}
	if _, err := datetime.ParsePeriod(conf.Loan.StartDate); err != nil {
		return fmt.Errorf("loan start date must use the %s layout, got %q", constants.DateTimeLayout, conf.Loan.StartDate)
	}
	if conf.Acceleration.ExtraMonthly < 0 || conf.Acceleration.LumpSum < 0 || conf.Acceleration.AnnualExtra < 0 {
		return fmt.Errorf("acceleration amounts must not be negative")
	}
	return nil
}

// ValidateConfiguration performs configuration validation and returns any
// warnings; these indicate options that will silently do nothing rather than
// hard failures.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Loan.InterestRate == 0 {
		warnings = append(warnings, "Loan has a zero interest rate; payments amortize straight-line")
	}

	if conf.Acceleration.LumpSum > 0 {
		lumpSumDate, err := datetime.ParsePeriod(conf.Acceleration.LumpSumDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Lump sum of %.2f has no usable date (%q) and will never be applied",
				conf.Acceleration.LumpSum, conf.Acceleration.LumpSumDate))
		} else if start, startErr := datetime.ParsePeriod(conf.Loan.StartDate); startErr == nil {
			if lumpSumDate.Before(start) {
				warnings = append(warnings, fmt.Sprintf("Lump sum date %s predates the loan start %s; it will be applied to the first payment",
					conf.Acceleration.LumpSumDate, conf.Loan.StartDate))
			}
			if maturity := start.AddDate(conf.Loan.TermYears, 0, 0); lumpSumDate.After(maturity) {
				warnings = append(warnings, fmt.Sprintf("Lump sum date %s is after the loan matures and will never be applied",
					conf.Acceleration.LumpSumDate))
			}
		}
	}

	if conf.Acceleration.AnnualExtra > 0 {
		if conf.Acceleration.AnnualExtraMonth < 0 || conf.Acceleration.AnnualExtraMonth >= constants.MonthsPerYear {
			warnings = append(warnings, fmt.Sprintf("Annual extra month index %d is outside 0-11; the annual extra will never be applied",
				conf.Acceleration.AnnualExtraMonth))
		}
	}

	return warnings
}

// ToLoan converts the loan configuration into the engine's input type.
func (conf *Configuration) ToLoan() schedule.Loan {
	return schedule.Loan{
		Principal:    conf.Loan.Principal,
		InterestRate: conf.Loan.InterestRate,
		TermYears:    conf.Loan.TermYears,
		StartDate:    conf.Loan.StartDate,
	}
}

// ToAcceleration converts the acceleration configuration into the engine's
// input type.
func (conf *Configuration) ToAcceleration() schedule.Acceleration {
	return schedule.Acceleration{
		ExtraMonthly:     conf.Acceleration.ExtraMonthly,
		Biweekly:         conf.Acceleration.Biweekly,
		LumpSum:          conf.Acceleration.LumpSum,
		LumpSumDate:      conf.Acceleration.LumpSumDate,
		AnnualExtra:      conf.Acceleration.AnnualExtra,
		AnnualExtraMonth: conf.Acceleration.AnnualExtraMonth,
	}
}
