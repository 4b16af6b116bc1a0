package model

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditType enumerates the credit products offered by the bank.
type CreditType string

const (
	CreditTypePersonalLoan CreditType = "PERSONAL_LOAN"
	CreditTypeBusinessLoan CreditType = "BUSINESS_LOAN"
	CreditTypeCreditCard   CreditType = "CREDIT_CARD"
)

// Credit represents a credit product held by a customer: a personal loan,
// a business loan, or a credit card.
type Credit struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CreditNumber string          `json:"credit_number" gorm:"uniqueIndex;size:14;not null"`
	CreditType   CreditType      `json:"credit_type" gorm:"size:20;not null;index"`
	CustomerID   string          `json:"customer_id" gorm:"size:64;not null;index"`
	// CreditAmount is the originally approved principal. Immutable after creation.
	CreditAmount decimal.Decimal `json:"credit_amount" gorm:"type:decimal(20,2);not null"`
	// Balance is the current outstanding amount owed. Never negative.
	Balance decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null;default:0"`
	// CreditLimit is the remaining spendable headroom. For credit cards the
	// invariant Balance + CreditLimit == CreditAmount holds across every
	// charge and payment; loans keep it at the principal.
	CreditLimit    decimal.Decimal `json:"credit_limit" gorm:"type:decimal(20,2);not null;default:0"`
	InterestRate   decimal.Decimal `json:"interest_rate" gorm:"type:decimal(8,4);not null;default:0"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" gorm:"type:decimal(20,2);not null;default:0"`
	PaymentDueDay  int             `json:"payment_due_day" gorm:"default:1"`
	Active         bool            `json:"active" gorm:"default:true;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Credit) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AvailableCredit returns the spendable headroom. The credit limit is
// authoritative when populated; records persisted without one fall back to
// principal minus balance.
func (c *Credit) AvailableCredit() decimal.Decimal {
	if c.CreditLimit.IsPositive() {
		return c.CreditLimit
	}
	return c.CreditAmount.Sub(c.Balance)
}

// IsCreditCard reports whether this credit is a credit card. Charges are only
// permitted on cards.
func (c *Credit) IsCreditCard() bool {
	return c.CreditType == CreditTypeCreditCard
}

const (
	creditNumberPrefix   = "CRD-"
	creditNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	creditNumberLength   = 10
)

// NewCreditNumber generates a human-facing code like "CRD-8F2K19QX3M".
// Collisions are statistically negligible and not retried; the unique index on
// credit_number surfaces one as an insert error instead of silent damage.
func NewCreditNumber() string {
	buf := make([]byte, creditNumberLength)
	if _, err := rand.Read(buf); err != nil {
		panic("credit number entropy: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = creditNumberAlphabet[int(b)%len(creditNumberAlphabet)]
	}
	return creditNumberPrefix + string(buf)
}
