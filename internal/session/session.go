// Package session orchestrates one synthetic generation run: configuration,
// validation and defaulting, bundle generation, corruption quota, and
// progress reporting. A session is a single synchronous pass producing a
// finite batch of records; it is never restarted.
package session

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stubbank/stubbank/internal/assets"
	"github.com/stubbank/stubbank/internal/generate"
	"github.com/stubbank/stubbank/internal/model"
	"github.com/stubbank/stubbank/internal/recurrence"
	"github.com/stubbank/stubbank/internal/sampling"
)

// counterpartyID is the stable synthetic counterparty attached to default
// accounts.
const counterpartyID = "12345678-1234-1234-1245-123456789012"

// Access-code request constants handed to the CodeProvider.
const (
	ChannelSMS    = "sms"
	Pattern6Digit = `^[0-9]{6}$`
	codeKeyword   = "the keyword"
	codePrompt    = "The generator needs an access code, please provide one"
)

const (
	minDelaySeconds     = 0
	maxDelaySeconds     = 3600
	defaultDelaySeconds = 1
	defaultWindowDays   = 7
)

// Mode selects what a session does: normal generation, or one of the
// deterministic fault/defect testing hooks.
type Mode string

const (
	ModeOperations Mode = "operations"

	// Operational-fault hooks: Collect raises the corresponding fault
	// before any generation occurs.
	ModeErrCollect              Mode = "err_collect"
	ModeErrAccessDenied         Mode = "err_access_denied"
	ModeErrTemporaryUnavailable Mode = "err_temporary_unavailable"
	ModeErrConnectionFailure    Mode = "err_connection_failure"
	ModeErrParameter            Mode = "err_parameter"

	// Simulated-defect hooks: the named call panics with DefectMarker.
	ModeDefectValidate     Mode = "defect_validate"
	ModeDefectCollect      Mode = "defect_collect"
	ModeDefectAccounts     Mode = "defect_accounts"
	ModeDefectTransactions Mode = "defect_transactions"
)

// State is the session lifecycle state.
type State string

const (
	StateUnvalidated State = "unvalidated"
	StateValidated   State = "validated"
	StateCollecting  State = "collecting"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// CodeProvider is the host callback used when AskForCode is set. It returns
// the code the user supplied, or "" when none was provided.
type CodeProvider interface {
	RequestCode(channel, keyword, pattern, prompt string) string
}

// Config holds the host-supplied session parameters.
type Config struct {
	Mode         Mode
	CorrectCount int
	ErrorCount   int
	BeginDate    time.Time
	EndDate      time.Time
	DelaySeconds int
	Currency     string
	Seed         int64

	// ParameterErrorField is the field a parameter fault blames.
	ParameterErrorField string

	AskForCode bool

	// Pre-supplied accounts; Validate provisions defaults for any left nil.
	Payment  *model.Account
	Saving   *model.Account
	Shopping *model.Account

	RecurringPayments []recurrence.Config
}

// DefaultConfig returns the configuration a fresh session starts from.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeOperations,
		CorrectCount: 10,
		ErrorCount:   0,
		DelaySeconds: defaultDelaySeconds,
		Currency:     "EUR",
	}
}

// Session owns one generation run.
type Session struct {
	cfg     Config
	sampler *sampling.Sampler
	state   State

	payment  *model.Account
	saving   *model.Account
	shopping *model.Account

	accounts     []*model.Account
	transactions []*model.Transaction

	// progress is atomic so a polling observer can read it while the
	// delay loop runs.
	progress atomic.Int32

	codeProvider CodeProvider

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Session from a Config. A zero Seed seeds the sampler from
// the wall clock.
func New(cfg Config) *Session {
	s := &Session{
		cfg:   cfg,
		state: StateUnvalidated,
		now:   time.Now,
		sleep: time.Sleep,
	}
	if cfg.Seed != 0 {
		s.sampler = sampling.New(cfg.Seed)
	} else {
		s.sampler = sampling.NewRandom()
	}
	return s
}

// SetCodeProvider installs the host access-code callback.
func (s *Session) SetCodeProvider(p CodeProvider) {
	s.codeProvider = p
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Progress returns the collection progress in percent, monotonically
// increasing from 0 to 100.
func (s *Session) Progress() int {
	return int(s.progress.Load())
}

// Validate checks the configuration and provisions defaults, returning
// field-scoped findings. Error-severity findings flag an invalid state but
// do not prevent a later Collect. Calling Validate twice does not create a
// second set of default accounts.
func (s *Session) Validate() []Finding {
	if s.cfg.Mode == ModeDefectValidate {
		raiseDefect("validate()")
	}

	var findings []Finding
	if s.cfg.Mode == ModeOperations {
		s.provisionDefaultAccounts()

		if s.cfg.BeginDate.IsZero() {
			// Default window is the past 7 days.
			s.cfg.EndDate = s.now()
			s.cfg.BeginDate = s.cfg.EndDate.AddDate(0, 0, -defaultWindowDays)
		} else if s.cfg.EndDate.IsZero() {
			findings = append(findings, errorFinding("endDate", "form.error.endDate.null"))
		}
		if !s.cfg.EndDate.IsZero() && s.cfg.BeginDate.After(s.cfg.EndDate) {
			findings = append(findings, errorFinding("beginDate", "form.error.beginAfterEndDate"))
		}
		if s.cfg.ErrorCount < 0 {
			findings = append(findings, errorFinding("errorOpCount", "form.error.errorOpCount"))
		}
		if s.cfg.CorrectCount < 0 {
			findings = append(findings, errorFinding("correctOpCount", "form.error.correctOpCount"))
		}
		if s.cfg.DelaySeconds < minDelaySeconds || s.cfg.DelaySeconds > maxDelaySeconds {
			findings = append(findings, warningFinding("delayInSeconds", "form.warn.delayInSeconds.ignored"))
			s.cfg.DelaySeconds = defaultDelaySeconds
		}
	}

	if s.state == StateUnvalidated {
		s.state = StateValidated
	}
	return findings
}

// Collect runs the generation pass. Fault modes raise their fault
// deterministically before any generation occurs. The call blocks for the
// configured delay, advancing progress once per second.
func (s *Session) Collect() error {
	if s.cfg.Mode == ModeDefectCollect {
		raiseDefect("collect()")
	}

	s.progress.Store(0)

	if s.cfg.AskForCode && s.codeProvider != nil {
		code := s.codeProvider.RequestCode(ChannelSMS, codeKeyword, Pattern6Digit, codePrompt)
		if code == "" {
			s.state = StateFailed
			return newFault(FaultAccessDenied, "access denied, no code provided", s.now())
		}
	}

	switch s.cfg.Mode {
	case ModeErrCollect:
		s.state = StateFailed
		return newFault(FaultCollect, "error.CollectError", s.now())
	case ModeErrAccessDenied:
		s.state = StateFailed
		return newFault(FaultAccessDenied, "error.AccessDeny", s.now())
	case ModeErrTemporaryUnavailable:
		s.state = StateFailed
		return newFault(FaultTemporaryUnavailable, "error.TemporaryUnavailable", s.now())
	case ModeErrConnectionFailure:
		s.state = StateFailed
		return newFault(FaultConnectionFailure, "error.ConnectionFailure", s.now())
	case ModeErrParameter:
		s.state = StateFailed
		fault := newFault(FaultParameter, "error.ParameterError", s.now())
		fault.Field = s.cfg.ParameterErrorField
		return fault
	}

	if s.state != StateValidated {
		return ErrNotValidated
	}
	s.state = StateCollecting

	gen := generate.New(s.sampler, s.cfg.BeginDate, s.cfg.EndDate, s.payment, s.saving, s.shopping)

	s.transactions = append(s.transactions, gen.InternalBundle()...)
	for i := 0; i < s.cfg.CorrectCount; i++ {
		s.transactions = append(s.transactions, gen.PurchaseBundle()...)
		s.transactions = append(s.transactions, gen.TransferBundle()...)
	}
	for _, series := range s.cfg.RecurringPayments {
		txs, err := gen.RecurringPayments(series)
		if err != nil {
			s.state = StateFailed
			fault := newFault(FaultParameter, err.Error(), s.now())
			fault.Field = "recurringPayments"
			return fault
		}
		s.transactions = append(s.transactions, txs...)
	}
	for i := 0; i < s.cfg.ErrorCount; i++ {
		tx := gen.AdHoc()
		mode := gen.Corrupt(tx)
		slog.Debug("generated error record", "id", tx.ID, "corruption", mode.String())
		// The corrupted amount still hits the payment balance, whatever
		// the corruption did to the record.
		s.payment.Apply(tx.Amount)
		s.transactions = append(s.transactions, tx)
	}

	for i := 0; i < s.cfg.DelaySeconds; i++ {
		s.sleep(time.Second)
		s.progress.Store(int32((i + 1) * 100 / s.cfg.DelaySeconds))
	}
	s.progress.Store(100)
	s.state = StateDone
	return nil
}

// Accounts returns the session's account list.
func (s *Session) Accounts() []*model.Account {
	if s.cfg.Mode == ModeDefectAccounts {
		raiseDefect("accounts()")
	}
	return s.accounts
}

// Transactions returns the accumulated transaction list.
func (s *Session) Transactions() []*model.Transaction {
	if s.cfg.Mode == ModeDefectTransactions {
		raiseDefect("transactions()")
	}
	return s.transactions
}

func (s *Session) provisionDefaultAccounts() {
	currency := s.cfg.Currency
	if currency == "" {
		currency = "EUR"
	}

	if s.payment == nil {
		if s.cfg.Payment != nil {
			s.payment = s.cfg.Payment
		} else {
			s.payment = model.NewAccount(model.AccountTypePayment, "My checking account", counterpartyID, currency, decimal.Zero)
			s.payment.AddPaymentMethod(model.PaymentMethod{Type: model.PaymentMethodCard, LastFour: "1234"})
			s.payment.AddPaymentMethod(model.PaymentMethod{Type: model.PaymentMethodTransfer})
			s.payment.AddPaymentMethod(model.PaymentMethod{Type: model.PaymentMethodCheck})
			s.payment.SetMetadata(model.MetadataIBAN, "FR1234567891234567891234567")
		}
		s.accounts = append(s.accounts, s.payment)
	}
	if s.saving == nil {
		if s.cfg.Saving != nil {
			s.saving = s.cfg.Saving
		} else {
			s.saving = model.NewAccount(model.AccountTypeSaving, "My saving account", counterpartyID, currency, decimal.Zero)
			s.saving.AddPaymentMethod(model.PaymentMethod{Type: model.PaymentMethodTransfer})
		}
		s.accounts = append(s.accounts, s.saving)
	}
	if s.shopping == nil {
		if s.cfg.Shopping != nil {
			s.shopping = s.cfg.Shopping
		} else {
			s.shopping = model.NewAccount(model.AccountTypeShopping, "My shopping account", counterpartyID, currency, decimal.NewFromFloat(12.32))
			card := model.LoyaltyCard{
				BarcodeType: model.BarcodeCode128,
				Reference:   "123456789012",
				Issuer:      "Myshop.com",
			}
			if cover, err := assets.LoyaltyCover(); err == nil {
				card.Cover = &cover
			} else {
				slog.Error("cannot load loyalty card cover", "error", err)
			}
			s.shopping.AddLoyaltyCard(card)
		}
		s.accounts = append(s.accounts, s.shopping)
	}
}
