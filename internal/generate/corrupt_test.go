package generate

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubbank/stubbank/internal/model"
	"github.com/stubbank/stubbank/internal/sampling"
)

func wellFormed() *model.Transaction {
	return model.NewTransaction(
		"tx-1",
		"acct-1",
		model.TransactionPayment,
		time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
		"Paiement CB Fnac Lyon (AB12CD34EF)",
		"Lorem ipsum dolor sit amet.",
		decimal.NewFromFloat(-42.50),
		"EUR",
	)
}

func TestApplyCorruptionModes(t *testing.T) {
	huge := decimal.NewFromFloat(math.MaxFloat64 / 1000)

	tests := []struct {
		mode  CorruptionMode
		check func(t *testing.T, tx *model.Transaction)
	}{
		{CorruptClearTransactionDate, func(t *testing.T, tx *model.Transaction) {
			assert.True(t, tx.TransactionDate.IsZero())
			assert.False(t, tx.ValueDate.IsZero())
		}},
		{CorruptClearValueDate, func(t *testing.T, tx *model.Transaction) {
			assert.True(t, tx.ValueDate.IsZero())
			assert.False(t, tx.TransactionDate.IsZero())
		}},
		{CorruptClearLabel, func(t *testing.T, tx *model.Transaction) {
			assert.Nil(t, tx.Label)
		}},
		{CorruptEmptyLabel, func(t *testing.T, tx *model.Transaction) {
			require.NotNil(t, tx.Label)
			assert.Equal(t, "", *tx.Label)
		}},
		{CorruptBlankLabel, func(t *testing.T, tx *model.Transaction) {
			require.NotNil(t, tx.Label)
			assert.Equal(t, " ", *tx.Label)
		}},
		{CorruptHugePositiveAmount, func(t *testing.T, tx *model.Transaction) {
			assert.True(t, tx.Amount.Equal(huge))
		}},
		{CorruptHugeNegativeAmount, func(t *testing.T, tx *model.Transaction) {
			assert.True(t, tx.Amount.Equal(huge.Neg()))
		}},
		{CorruptUnknownAccount, func(t *testing.T, tx *model.Transaction) {
			assert.Equal(t, UnknownAccountToken, tx.AccountID)
		}},
		{CorruptZeroAmount, func(t *testing.T, tx *model.Transaction) {
			assert.True(t, tx.Amount.IsZero())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			reference := wellFormed()
			tx := wellFormed()
			ApplyCorruption(tx, tt.mode)
			tt.check(t, tx)
			assertOnlyExpectedChange(t, reference, tx, tt.mode)
		})
	}
}

// assertOnlyExpectedChange verifies every field the mode does not target is
// untouched.
func assertOnlyExpectedChange(t *testing.T, before, after *model.Transaction, mode CorruptionMode) {
	t.Helper()

	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Type, after.Type)
	assert.Equal(t, before.Currency, after.Currency)
	assert.Equal(t, before.Details, after.Details)
	assert.Equal(t, before.SeriesID, after.SeriesID)

	if mode != CorruptUnknownAccount {
		assert.Equal(t, before.AccountID, after.AccountID)
	}
	if mode != CorruptClearTransactionDate {
		assert.Equal(t, before.TransactionDate, after.TransactionDate)
	}
	if mode != CorruptClearValueDate {
		assert.Equal(t, before.ValueDate, after.ValueDate)
	}
	if mode != CorruptClearLabel && mode != CorruptEmptyLabel && mode != CorruptBlankLabel {
		assert.Equal(t, before.LabelOrEmpty(), after.LabelOrEmpty())
	}
	if mode != CorruptHugePositiveAmount && mode != CorruptHugeNegativeAmount && mode != CorruptZeroAmount {
		assert.True(t, before.Amount.Equal(after.Amount))
	}
}

func TestCorruptPicksOneOfNineModes(t *testing.T) {
	payment := model.NewAccount(model.AccountTypePayment, "p", "test", "EUR", decimal.Zero)
	saving := model.NewAccount(model.AccountTypeSaving, "s", "test", "EUR", decimal.Zero)
	shopping := model.NewAccount(model.AccountTypeShopping, "sh", "test", "EUR", decimal.Zero)
	g := New(sampling.New(11), windowStart, windowEnd, payment, saving, shopping)

	seen := make(map[CorruptionMode]bool)
	for i := 0; i < 500; i++ {
		mode := g.Corrupt(wellFormed())
		require.GreaterOrEqual(t, int(mode), 1)
		require.LessOrEqual(t, int(mode), corruptionModeCount)
		seen[mode] = true
	}
	assert.Len(t, seen, corruptionModeCount, "all nine modes should occur over 500 draws")
}
