// Package generate builds well-formed multi-leg transaction bundles with
// account-balance bookkeeping, plus the ad-hoc transactions the corruption
// injector malforms for negative testing.
package generate

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stubbank/stubbank/internal/assets"
	"github.com/stubbank/stubbank/internal/model"
	"github.com/stubbank/stubbank/internal/recurrence"
	"github.com/stubbank/stubbank/internal/sampling"
	"github.com/stubbank/stubbank/internal/textgen"
)

const detailsWordCount = 15

// Generator produces transaction bundles inside a fixed date window,
// mutating the referenced accounts' balances as it emits legs.
type Generator struct {
	sampler  *sampling.Sampler
	begin    time.Time
	end      time.Time
	currency string

	payment  *model.Account
	saving   *model.Account
	shopping *model.Account
}

// New creates a Generator over the given window and accounts.
func New(s *sampling.Sampler, begin, end time.Time, payment, saving, shopping *model.Account) *Generator {
	return &Generator{
		sampler:  s,
		begin:    begin,
		end:      end,
		currency: payment.Currency,
		payment:  payment,
		saving:   saving,
		shopping: shopping,
	}
}

// PurchaseBundle emits a shopping-account purchase composed of a randomly
// sized item list, plus the matching payment-account debit. Always 2 legs.
func (g *Generator) PurchaseBundle() []*model.Transaction {
	date := g.sampler.InstantBetween(g.begin, g.end)
	purchase := model.NewTransaction(
		uuid.NewString(),
		g.shopping.ID,
		model.TransactionPurchase,
		date, date,
		"", "",
		decimal.Zero,
		g.currency,
	)

	amount := decimal.Zero
	var labels []string
	for i := 0; i < g.sampler.ItemCount(); i++ {
		item := g.Item()
		amount = amount.Add(item.Price)
		labels = append(labels, item.Label)
		purchase.AddItem(item)
	}
	label := strings.Join(labels, ", ")
	purchase.SetLabel(label)
	purchase.Details = label
	purchase.Amount = amount
	purchase.AddPayment(model.PaymentLeg{
		Type:     model.PaymentMethodCard,
		Label:    "Visa",
		Date:     date,
		Amount:   amount,
		Currency: g.currency,
		LastFour: "1234",
	})
	if g.sampler.Chance(60) {
		if invoice, err := assets.Invoice(); err == nil {
			purchase.AddFile(invoice)
		} else {
			slog.Debug("skipping invoice attachment", "error", err)
		}
	}
	g.shopping.Apply(amount)

	debit := model.NewTransaction(
		uuid.NewString(),
		g.payment.ID,
		model.TransactionPayment,
		date, date,
		"Purchase of "+label,
		textgen.OperationDetails(g.sampler, detailsWordCount),
		amount.Neg(),
		g.currency,
	)
	g.payment.Apply(amount.Neg())

	return []*model.Transaction{purchase, debit}
}

// TransferBundle emits a payment-account debit and the reciprocal
// saving-account credit for one random amount. Always 2 legs.
func (g *Generator) TransferBundle() []*model.Transaction {
	date := g.sampler.InstantBetween(g.begin, g.end)
	amount := g.sampler.Price()

	out := model.NewTransaction(
		uuid.NewString(),
		g.payment.ID,
		model.TransactionTransfer,
		date, date,
		"Transfer to "+g.saving.Label,
		textgen.OperationDetails(g.sampler, detailsWordCount),
		amount.Neg(),
		g.currency,
	)
	g.payment.Apply(amount.Neg())

	in := model.NewTransaction(
		uuid.NewString(),
		g.saving.ID,
		model.TransactionTransfer,
		date, date,
		"Transfer from "+g.payment.Label,
		textgen.OperationDetails(g.sampler, detailsWordCount),
		amount,
		g.currency,
	)
	g.saving.Apply(amount)

	return []*model.Transaction{out, in}
}

// InternalBundle emits a fixed-narrative interest credit into the saving
// account. Always 1 leg.
func (g *Generator) InternalBundle() []*model.Transaction {
	date := g.sampler.InstantBetween(g.begin, g.end)
	amount := g.sampler.Price()

	credit := model.NewTransaction(
		uuid.NewString(),
		g.saving.ID,
		model.TransactionInternal,
		date, date,
		"Interest 2%",
		textgen.OperationDetails(g.sampler, detailsWordCount),
		amount,
		g.currency,
	)
	g.saving.Apply(amount)

	return []*model.Transaction{credit}
}

// Item builds one purchase line item with optional references, URL, and
// cover image.
func (g *Generator) Item() model.Item {
	item := model.Item{
		Label:    textgen.ProductName(g.sampler),
		Price:    g.sampler.Price(),
		Quantity: g.sampler.Quantity(),
		Unit:     model.UnitPiece,
	}
	if g.sampler.Chance(40) {
		item.SetReference(model.ProductRefASIN, textgen.Reference(g.sampler, 10))
	}
	if g.sampler.Chance(70) {
		item.SetReference(model.ProductRefSKU, fmt.Sprintf("%s-%04d",
			textgen.Reference(g.sampler, 3), g.sampler.IntN(10000)))
	}
	if g.sampler.Chance(80) {
		item.URL = "https://shop.example/p/" + strings.ToLower(textgen.Reference(g.sampler, 8))
	}
	if g.sampler.Chance(50) {
		if cover, err := assets.ProductImage(); err == nil {
			item.AddFile(cover)
		} else {
			slog.Debug("skipping item cover", "error", err)
		}
	}
	return item
}

// AdHoc builds a single well-formed payment-account transaction whose
// category is selected by a deterministic residue of its settlement
// timestamp. The caller owns balance bookkeeping.
func (g *Generator) AdHoc() *model.Transaction {
	valueDate := g.sampler.InstantBetween(g.begin, g.end)
	txDate := g.sampler.InstantBetween(valueDate, g.end)
	return model.NewTransaction(
		uuid.NewString(),
		g.payment.ID,
		typeFromTimestamp(txDate),
		valueDate, txDate,
		textgen.OperationLabel(g.sampler),
		textgen.OperationDetails(g.sampler, detailsWordCount),
		g.sampler.SignedAmount(),
		g.currency,
	)
}

// typeFromTimestamp maps a settlement timestamp to a category by
// division remainder of its millisecond value: 11 selects purchase,
// 7 internal, 5 transfer, anything else payment.
func typeFromTimestamp(date time.Time) model.TransactionType {
	ms := date.UnixMilli()
	switch {
	case ms%11 == 0:
		return model.TransactionPurchase
	case ms%7 == 0:
		return model.TransactionInternal
	case ms%5 == 0:
		return model.TransactionTransfer
	default:
		return model.TransactionPayment
	}
}

// RecurringPayments materializes a recurring series into payment-account
// transactions, one per surviving occurrence, debiting the payment account.
func (g *Generator) RecurringPayments(cfg recurrence.Config) ([]*model.Transaction, error) {
	occurrences, err := recurrence.Occurrences(cfg, g.begin, g.end, g.sampler)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", cfg.Seed, err)
	}

	out := make([]*model.Transaction, 0, len(occurrences))
	for _, occ := range occurrences {
		tx := model.NewTransaction(
			occ.ID,
			g.payment.ID,
			model.TransactionPayment,
			occ.Date, occ.Date,
			cfg.Label,
			"Recurring payment due "+occ.Date.Format("2006-01-02"),
			occ.Amount,
			g.currency,
		)
		tx.SeriesID = cfg.Seed
		g.payment.Apply(occ.Amount)
		out = append(out, tx)
	}
	return out, nil
}
