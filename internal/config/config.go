// Package config loads and saves stubbank.yaml session configuration files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/stubbank/stubbank/internal/recurrence"
	"github.com/stubbank/stubbank/internal/session"
)

const dateLayout = "2006-01-02"

// Config represents the top-level stubbank.yaml configuration.
type Config struct {
	Mode                string             `yaml:"mode,omitempty"`
	CorrectCount        int                `yaml:"correct_count"`
	ErrorCount          int                `yaml:"error_count"`
	BeginDate           string             `yaml:"begin_date,omitempty"`
	EndDate             string             `yaml:"end_date,omitempty"`
	DelaySeconds        int                `yaml:"delay_seconds"`
	Currency            string             `yaml:"currency,omitempty"`
	Seed                int64              `yaml:"seed,omitempty"`
	AskForCode          bool               `yaml:"ask_for_code,omitempty"`
	ParameterErrorField string             `yaml:"parameter_error_field,omitempty"`
	RecurringPayments   []RecurringPayment `yaml:"recurring_payments,omitempty"`
}

// RecurringPayment defines one recurring series in the config file.
// Dates are YYYY-MM-DD; months are 1..12.
type RecurringPayment struct {
	Seed       string   `yaml:"seed"`
	Label      string   `yaml:"label"`
	Amount     string   `yaml:"amount"`
	Ratio      *float64 `yaml:"ratio,omitempty"`
	Unit       string   `yaml:"unit"`
	Interval   int      `yaml:"interval"`
	Start      string   `yaml:"start"`
	End        string   `yaml:"end,omitempty"`
	StartMonth int      `yaml:"start_month,omitempty"`
	EndMonth   int      `yaml:"end_month,omitempty"`
}

// Load reads a stubbank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config mirroring session defaults.
func Default() *Config {
	d := session.DefaultConfig()
	return &Config{
		Mode:         string(d.Mode),
		CorrectCount: d.CorrectCount,
		ErrorCount:   d.ErrorCount,
		DelaySeconds: d.DelaySeconds,
		Currency:     d.Currency,
	}
}

// SessionConfig converts the file representation into a session.Config.
func (c *Config) SessionConfig() (session.Config, error) {
	out := session.DefaultConfig()
	if c.Mode != "" {
		out.Mode = session.Mode(c.Mode)
	}
	out.CorrectCount = c.CorrectCount
	out.ErrorCount = c.ErrorCount
	out.DelaySeconds = c.DelaySeconds
	out.Seed = c.Seed
	out.AskForCode = c.AskForCode
	out.ParameterErrorField = c.ParameterErrorField
	if c.Currency != "" {
		out.Currency = c.Currency
	}

	var err error
	if out.BeginDate, err = parseDate(c.BeginDate, "begin_date"); err != nil {
		return session.Config{}, err
	}
	if out.EndDate, err = parseDate(c.EndDate, "end_date"); err != nil {
		return session.Config{}, err
	}

	for _, rp := range c.RecurringPayments {
		series, err := rp.seriesConfig()
		if err != nil {
			return session.Config{}, err
		}
		out.RecurringPayments = append(out.RecurringPayments, series)
	}
	return out, nil
}

func (rp RecurringPayment) seriesConfig() (recurrence.Config, error) {
	amount, err := decimal.NewFromString(rp.Amount)
	if err != nil {
		return recurrence.Config{}, fmt.Errorf("series %q: parsing amount %q: %w", rp.Seed, rp.Amount, err)
	}
	start, err := parseDate(rp.Start, "start")
	if err != nil {
		return recurrence.Config{}, fmt.Errorf("series %q: %w", rp.Seed, err)
	}
	end, err := parseDate(rp.End, "end")
	if err != nil {
		return recurrence.Config{}, fmt.Errorf("series %q: %w", rp.Seed, err)
	}
	return recurrence.Config{
		Seed:       rp.Seed,
		Label:      rp.Label,
		Amount:     amount,
		Ratio:      rp.Ratio,
		Unit:       recurrence.Unit(rp.Unit),
		Interval:   rp.Interval,
		Start:      start,
		End:        end,
		StartMonth: time.Month(rp.StartMonth),
		EndMonth:   time.Month(rp.EndMonth),
	}, nil
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return t, nil
}
