package appointment

import (
	"regexp"
	"strings"

	"groomly/internal/pkg/errs"
)

var (
	ErrInvalidStatus        = errs.New("invalid appointment status")
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
	ErrInvalidCEP           = errs.New("CEP must have 8 digits")
	ErrInvalidState         = errs.New("state must be a 2-letter code")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// HoldsSlot reports whether an appointment in this status still occupies its
// time slot. Cancelled and completed appointments release it.
func (s Status) HoldsSlot() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func (s Status) String() string { return string(s) }

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentPix          PaymentMethod = "pix"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentDebitCard    PaymentMethod = "debit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// ParsePaymentMethod validates the method the customer picked. Payment is
// recorded only; no processing happens anywhere in this service.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentBankTransfer:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) String() string { return string(m) }

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Address is where the groomer picks the pet up. Plain record fields; no
// postal lookup is performed.
type Address struct {
	cep        string
	street     string
	number     string
	district   string
	city       string
	state      string
	complement string
}

// NewAddress normalizes the CEP to "#####-###" and the state to upper case.
func NewAddress(cep, street, number, district, city, state, complement string) (Address, error) {
	digits := nonDigits.ReplaceAllString(cep, "")
	if len(digits) != 8 {
		return Address{}, ErrInvalidCEP
	}

	state = strings.ToUpper(strings.TrimSpace(state))
	if len(state) != 2 {
		return Address{}, ErrInvalidState
	}

	return Address{
		cep:        digits[:5] + "-" + digits[5:],
		street:     strings.TrimSpace(street),
		number:     strings.TrimSpace(number),
		district:   strings.TrimSpace(district),
		city:       strings.TrimSpace(city),
		state:      state,
		complement: strings.TrimSpace(complement),
	}, nil
}

func ReconstructAddress(cep, street, number, district, city, state, complement string) Address {
	return Address{
		cep:        cep,
		street:     street,
		number:     number,
		district:   district,
		city:       city,
		state:      state,
		complement: complement,
	}
}

func (a Address) CEP() string        { return a.cep }
func (a Address) Street() string     { return a.street }
func (a Address) Number() string     { return a.number }
func (a Address) District() string   { return a.district }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) Complement() string { return a.complement }
