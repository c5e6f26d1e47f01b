// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/prepay"
	"github.com/canamort/mortgage-schedule/pkg/rates"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-schedule.
type Configuration struct {
	Mortgage Mortgage
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, report, json
}

// Mortgage holds the purchase, financing, term, and prepayment parameters
// for one schedule computation.
type Mortgage struct {
	PurchasePrice      float64
	DownPaymentPercent float64
	ExtraFinancing     float64
	SurtaxRate         float64
	AmortizationYears  float64
	Cadence            string
	StartDate          string
	Terms              []Term
	ExtraPayments      []prepay.AdditionalPayment
	Limits             *prepay.Limits
}

// Term indicates one renewal period and its rate.
type Term struct {
	StartPaymentIndex int
	AnnualRate        float64
	TermYears         float64
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

	// The YAML parser resolves bare dates like 2026-01-01 into time.Time;
	// fold them back into layout strings so date fields stay strings.
	var configuration Configuration
	err := viper.Unmarshal(&configuration, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToStringHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

func timeToStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == reflect.TypeOf(time.Time{}) && to.Kind() == reflect.String {
			return data.(time.Time).Format(constants.DateTimeLayout), nil
		}
		return data, nil
	}
}

// ToParameters converts the mortgage configuration into engine parameters,
// validating the cadence along the way.
func (m Mortgage) ToParameters() (engine.Parameters, error) {
	cadence, err := rates.ParseCadence(m.Cadence)
	if err != nil {
		return engine.Parameters{}, err
	}

	terms := make([]engine.Term, 0, len(m.Terms))
	for _, term := range m.Terms {
		terms = append(terms, engine.Term{
			StartPaymentIndex: term.StartPaymentIndex,
			AnnualRate:        term.AnnualRate,
			TermYears:         term.TermYears,
		})
	}

	return engine.Parameters{
		PurchasePrice:      m.PurchasePrice,
		DownPaymentPercent: m.DownPaymentPercent,
		ExtraFinancing:     m.ExtraFinancing,
		SurtaxRate:         m.SurtaxRate,
		AmortizationYears:  m.AmortizationYears,
		Cadence:            cadence,
		StartDate:          m.StartDate,
		Terms:              terms,
		ExtraPayments:      m.ExtraPayments,
		Limits:             m.Limits,
	}, nil
}
