package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies generated accounts.
type AccountType string

const (
	AccountTypePayment  AccountType = "payment"
	AccountTypeSaving   AccountType = "saving"
	AccountTypeShopping AccountType = "shopping"
)

// Metadata keys recognised by consumers of generated accounts.
const (
	MetadataIBAN = "iban"
)

// Account is a synthetic account. Balance is authoritative: every generated
// transaction referencing the account is applied to it exactly once, in
// generation order.
type Account struct {
	ID             string            `json:"id"`
	Type           AccountType       `json:"type"`
	Label          string            `json:"label"`
	CounterpartyID string            `json:"counterparty_id"`
	Currency       string            `json:"currency"`
	Balance        decimal.Decimal   `json:"balance"`
	PaymentMethods []PaymentMethod   `json:"payment_methods,omitempty"`
	LoyaltyCards   []LoyaltyCard     `json:"loyalty_cards,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// NewAccount creates an account with a fresh random identity.
func NewAccount(accountType AccountType, label, counterpartyID, currency string, balance decimal.Decimal) *Account {
	return &Account{
		ID:             uuid.NewString(),
		Type:           accountType,
		Label:          label,
		CounterpartyID: counterpartyID,
		Currency:       currency,
		Balance:        balance,
	}
}

// Apply adds a signed transaction amount to the running balance.
func (a *Account) Apply(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// AddPaymentMethod attaches a payment method to the account.
func (a *Account) AddPaymentMethod(m PaymentMethod) {
	a.PaymentMethods = append(a.PaymentMethods, m)
}

// AddLoyaltyCard attaches a loyalty card to the account.
func (a *Account) AddLoyaltyCard(c LoyaltyCard) {
	a.LoyaltyCards = append(a.LoyaltyCards, c)
}

// SetMetadata records a metadata key/value pair on the account.
func (a *Account) SetMetadata(key, value string) {
	if a.Metadata == nil {
		a.Metadata = make(map[string]string)
	}
	a.Metadata[key] = value
}

// PaymentMethodType identifies how an account can be debited.
type PaymentMethodType string

const (
	PaymentMethodCard     PaymentMethodType = "card"
	PaymentMethodTransfer PaymentMethodType = "transfer"
	PaymentMethodCheck    PaymentMethodType = "check"
)

// PaymentMethod is an instrument attached to an account.
type PaymentMethod struct {
	Type     PaymentMethodType `json:"type"`
	LastFour string            `json:"last_four,omitempty"`
}

// BarcodeType identifies a loyalty card barcode encoding.
type BarcodeType string

const (
	BarcodeCode128 BarcodeType = "code_128"
	BarcodeQR      BarcodeType = "qr"
)

// LoyaltyCard is a store card attached to a shopping account.
type LoyaltyCard struct {
	BarcodeType BarcodeType `json:"barcode_type"`
	Reference   string      `json:"reference"`
	Issuer      string      `json:"issuer"`
	Cover       *FileRef    `json:"cover,omitempty"`
}
