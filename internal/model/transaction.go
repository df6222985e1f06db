package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies generated transactions.
type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionPayment  TransactionType = "payment"
	TransactionTransfer TransactionType = "transfer"
	TransactionInternal TransactionType = "internal"
	TransactionOther    TransactionType = "other"
)

// Transaction is a single synthetic transaction. ValueDate is the economic
// effective date, TransactionDate the settlement date; well-formed data has
// ValueDate <= TransactionDate with both inside the generation window. Amount
// is signed: debits negative, credits positive.
//
// Label is a pointer so corrupted records can distinguish a cleared label
// from an empty or blank one. Zero dates mean the date was cleared.
type Transaction struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Type            TransactionType `json:"type"`
	ValueDate       time.Time       `json:"value_date"`
	TransactionDate time.Time       `json:"transaction_date"`
	Label           *string         `json:"label"`
	Details         string          `json:"details"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Items           []Item          `json:"items,omitempty"`
	Payments        []PaymentLeg    `json:"payments,omitempty"`
	Files           []FileRef       `json:"files,omitempty"`

	// SeriesID links a recurring occurrence back to the series that
	// produced it. Empty for ad-hoc transactions.
	SeriesID string `json:"series_id,omitempty"`
}

// NewTransaction builds a transaction with an explicit identity.
func NewTransaction(id, accountID string, txType TransactionType, valueDate, transactionDate time.Time, label, details string, amount decimal.Decimal, currency string) *Transaction {
	return &Transaction{
		ID:              id,
		AccountID:       accountID,
		Type:            txType,
		ValueDate:       valueDate,
		TransactionDate: transactionDate,
		Label:           &label,
		Details:         details,
		Amount:          amount,
		Currency:        currency,
	}
}

// SetLabel replaces the label with a non-nil value.
func (t *Transaction) SetLabel(label string) {
	t.Label = &label
}

// LabelOrEmpty returns the label, or "" when it was cleared.
func (t *Transaction) LabelOrEmpty() string {
	if t.Label == nil {
		return ""
	}
	return *t.Label
}

// AddItem appends a line item.
func (t *Transaction) AddItem(item Item) {
	t.Items = append(t.Items, item)
}

// AddPayment appends a payment-instrument leg.
func (t *Transaction) AddPayment(p PaymentLeg) {
	t.Payments = append(t.Payments, p)
}

// AddFile appends an attached file.
func (t *Transaction) AddFile(f FileRef) {
	t.Files = append(t.Files, f)
}

// PaymentLeg records how a transaction was settled.
type PaymentLeg struct {
	Type     PaymentMethodType `json:"type"`
	Label    string            `json:"label"`
	Date     time.Time         `json:"date"`
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency"`
	LastFour string            `json:"last_four,omitempty"`
}
