package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountApply(t *testing.T) {
	a := NewAccount(AccountTypePayment, "checking", "cp", "EUR", decimal.Zero)
	require.NotEmpty(t, a.ID)

	a.Apply(decimal.NewFromFloat(10.50))
	a.Apply(decimal.NewFromFloat(-4.25))
	assert.True(t, a.Balance.Equal(decimal.NewFromFloat(6.25)))
}

func TestAccountMetadata(t *testing.T) {
	a := NewAccount(AccountTypePayment, "checking", "cp", "EUR", decimal.Zero)
	a.SetMetadata(MetadataIBAN, "FR123")
	assert.Equal(t, "FR123", a.Metadata[MetadataIBAN])
}

func TestTransactionLabel(t *testing.T) {
	now := time.Now()
	tx := NewTransaction("id", "acct", TransactionPayment, now, now, "label", "details", decimal.Zero, "EUR")

	require.NotNil(t, tx.Label)
	assert.Equal(t, "label", tx.LabelOrEmpty())

	tx.Label = nil
	assert.Equal(t, "", tx.LabelOrEmpty())

	tx.SetLabel(" ")
	require.NotNil(t, tx.Label)
	assert.Equal(t, " ", *tx.Label)
}
