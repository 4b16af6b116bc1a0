package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creditbank/internal/errors"
	"creditbank/internal/model"
)

func TestValidateEligibility(t *testing.T) {
	tests := []struct {
		name              string
		requested         model.CreditType
		customerType      model.CustomerType
		personalLoanCount int64
		wantErr           bool
	}{
		{
			name:         "personal customer first personal loan",
			requested:    model.CreditTypePersonalLoan,
			customerType: model.CustomerTypePersonal,
		},
		{
			name:              "personal customer second personal loan rejected",
			requested:         model.CreditTypePersonalLoan,
			customerType:      model.CustomerTypePersonal,
			personalLoanCount: 1,
			wantErr:           true,
		},
		{
			name:              "personal customer credit card with existing loan",
			requested:         model.CreditTypeCreditCard,
			customerType:      model.CustomerTypePersonal,
			personalLoanCount: 1,
		},
		{
			name:         "personal customer business loan always rejected",
			requested:    model.CreditTypeBusinessLoan,
			customerType: model.CustomerTypePersonal,
			wantErr:      true,
		},
		{
			name:         "business customer personal loan always rejected",
			requested:    model.CreditTypePersonalLoan,
			customerType: model.CustomerTypeBusiness,
			wantErr:      true,
		},
		{
			name:              "business customer personal loan rejected regardless of count",
			requested:         model.CreditTypePersonalLoan,
			customerType:      model.CustomerTypeBusiness,
			personalLoanCount: 3,
			wantErr:           true,
		},
		{
			name:         "business customer business loan unlimited",
			requested:    model.CreditTypeBusinessLoan,
			customerType: model.CustomerTypeBusiness,
		},
		{
			name:         "business customer credit card unlimited",
			requested:    model.CreditTypeCreditCard,
			customerType: model.CustomerTypeBusiness,
		},
		{
			name:         "unknown credit type rejected",
			requested:    model.CreditType("MORTGAGE"),
			customerType: model.CustomerTypePersonal,
			wantErr:      true,
		},
		{
			name:         "unknown customer type rejected",
			requested:    model.CreditTypeCreditCard,
			customerType: model.CustomerType("GOVERNMENT"),
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEligibility(tt.requested, tt.customerType, tt.personalLoanCount)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsBusinessRule(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
