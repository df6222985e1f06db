package generate

import (
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stubbank/stubbank/internal/model"
)

// CorruptionMode names one way a transaction can be malformed.
type CorruptionMode int

const (
	CorruptClearTransactionDate CorruptionMode = iota + 1
	CorruptClearValueDate
	CorruptClearLabel
	CorruptEmptyLabel
	CorruptBlankLabel
	CorruptHugePositiveAmount
	CorruptHugeNegativeAmount
	CorruptUnknownAccount
	CorruptZeroAmount

	corruptionModeCount = 9
)

// UnknownAccountToken is the invalid account reference CorruptUnknownAccount
// installs.
const UnknownAccountToken = "foo"

// hugeAmount is scaled down from the float ceiling so a corrupted amount can
// still be accumulated into a balance without overflowing.
var hugeAmount = decimal.NewFromFloat(math.MaxFloat64 / 1000)

func (m CorruptionMode) String() string {
	switch m {
	case CorruptClearTransactionDate:
		return "clear transaction date"
	case CorruptClearValueDate:
		return "clear value date"
	case CorruptClearLabel:
		return "clear label"
	case CorruptEmptyLabel:
		return "empty label"
	case CorruptBlankLabel:
		return "blank label"
	case CorruptHugePositiveAmount:
		return "huge positive amount"
	case CorruptHugeNegativeAmount:
		return "huge negative amount"
	case CorruptUnknownAccount:
		return "unknown account"
	case CorruptZeroAmount:
		return "zero amount"
	}
	return "unknown"
}

// Corrupt selects one of the nine corruption modes uniformly and applies it
// to tx in place, returning the mode chosen.
func (g *Generator) Corrupt(tx *model.Transaction) CorruptionMode {
	mode := CorruptionMode(1 + g.sampler.IntN(corruptionModeCount))
	ApplyCorruption(tx, mode)
	return mode
}

// ApplyCorruption applies exactly one malformation to tx and changes
// nothing else.
func ApplyCorruption(tx *model.Transaction, mode CorruptionMode) {
	slog.Debug("corrupting transaction", "id", tx.ID, "mode", mode.String())
	switch mode {
	case CorruptClearTransactionDate:
		tx.TransactionDate = time.Time{}
	case CorruptClearValueDate:
		tx.ValueDate = time.Time{}
	case CorruptClearLabel:
		tx.Label = nil
	case CorruptEmptyLabel:
		tx.SetLabel("")
	case CorruptBlankLabel:
		tx.SetLabel(" ")
	case CorruptHugePositiveAmount:
		tx.Amount = hugeAmount
	case CorruptHugeNegativeAmount:
		tx.Amount = hugeAmount.Neg()
	case CorruptUnknownAccount:
		tx.AccountID = UnknownAccountToken
	case CorruptZeroAmount:
		tx.Amount = decimal.Zero
	default:
		tx.ValueDate = time.Time{}
	}
}
