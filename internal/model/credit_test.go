package model

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAvailableCredit(t *testing.T) {
	tests := []struct {
		name     string
		credit   Credit
		expected string
	}{
		{
			name: "credit limit populated",
			credit: Credit{
				CreditType:   CreditTypeCreditCard,
				CreditAmount: decimal.NewFromInt(1000),
				Balance:      decimal.NewFromInt(400),
				CreditLimit:  decimal.NewFromInt(600),
			},
			expected: "600",
		},
		{
			name: "fully charged card has zero headroom",
			credit: Credit{
				CreditType:   CreditTypeCreditCard,
				CreditAmount: decimal.NewFromInt(1000),
				Balance:      decimal.NewFromInt(1000),
				CreditLimit:  decimal.Zero,
			},
			expected: "0",
		},
		{
			name: "limit unset falls back to principal minus balance",
			credit: Credit{
				CreditType:   CreditTypePersonalLoan,
				CreditAmount: decimal.NewFromInt(5000),
				Balance:      decimal.NewFromInt(1500),
				CreditLimit:  decimal.Zero,
			},
			expected: "3500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.credit.AvailableCredit().String())
		})
	}
}

func TestIsCreditCard(t *testing.T) {
	assert.True(t, (&Credit{CreditType: CreditTypeCreditCard}).IsCreditCard())
	assert.False(t, (&Credit{CreditType: CreditTypePersonalLoan}).IsCreditCard())
	assert.False(t, (&Credit{CreditType: CreditTypeBusinessLoan}).IsCreditCard())
}

func TestNewCreditNumber(t *testing.T) {
	format := regexp.MustCompile(`^CRD-[A-Z0-9]{10}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := NewCreditNumber()
		assert.Regexp(t, format, number)
		seen[number] = true
	}
	// 100 draws from a 36^10 space should never repeat.
	assert.Len(t, seen, 100)
}
