package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubbank/stubbank/internal/recurrence"
	"github.com/stubbank/stubbank/internal/session"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stubbank.yaml")

	cfg := Default()
	cfg.CorrectCount = 25
	cfg.ErrorCount = 3
	cfg.BeginDate = "2025-04-01"
	cfg.EndDate = "2025-04-30"
	cfg.Seed = 42
	cfg.RecurringPayments = []RecurringPayment{{
		Seed:     "rent-2025",
		Label:    "Rent",
		Amount:   "-800",
		Unit:     "month",
		Interval: 1,
		Start:    "2025-01-03",
	}}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("correct_count: [not an int"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSessionConfig(t *testing.T) {
	ratio := 0.1
	cfg := &Config{
		Mode:         "operations",
		CorrectCount: 7,
		ErrorCount:   2,
		BeginDate:    "2025-04-01",
		EndDate:      "2025-04-30",
		DelaySeconds: 0,
		Currency:     "USD",
		Seed:         9,
		RecurringPayments: []RecurringPayment{{
			Seed:       "netflix",
			Label:      "Netflix",
			Amount:     "-13.49",
			Ratio:      &ratio,
			Unit:       "month",
			Interval:   1,
			Start:      "2025-01-15",
			End:        "2025-12-15",
			StartMonth: 1,
			EndMonth:   10,
		}},
	}

	sc, err := cfg.SessionConfig()
	require.NoError(t, err)

	assert.Equal(t, session.ModeOperations, sc.Mode)
	assert.Equal(t, 7, sc.CorrectCount)
	assert.Equal(t, 2, sc.ErrorCount)
	assert.Equal(t, "USD", sc.Currency)
	assert.Equal(t, int64(9), sc.Seed)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), sc.BeginDate)

	require.Len(t, sc.RecurringPayments, 1)
	series := sc.RecurringPayments[0]
	assert.Equal(t, "netflix", series.Seed)
	assert.Equal(t, recurrence.UnitMonth, series.Unit)
	assert.Equal(t, "-13.49", series.Amount.String())
	require.NotNil(t, series.Ratio)
	assert.Equal(t, 0.1, *series.Ratio)
	assert.Equal(t, time.January, series.StartMonth)
	assert.Equal(t, time.October, series.EndMonth)
}

func TestSessionConfigDefaults(t *testing.T) {
	sc, err := Default().SessionConfig()
	require.NoError(t, err)
	assert.Equal(t, session.ModeOperations, sc.Mode)
	assert.Equal(t, 10, sc.CorrectCount)
	assert.Equal(t, "EUR", sc.Currency)
	assert.True(t, sc.BeginDate.IsZero())
}

func TestSessionConfigBadValues(t *testing.T) {
	cfg := Default()
	cfg.BeginDate = "04/01/2025"
	_, err := cfg.SessionConfig()
	assert.Error(t, err)

	cfg = Default()
	cfg.RecurringPayments = []RecurringPayment{{Seed: "x", Amount: "lots"}}
	_, err = cfg.SessionConfig()
	assert.Error(t, err)
}
