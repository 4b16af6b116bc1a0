package service

import (
	"fmt"

	"creditbank/internal/errors"
	"creditbank/internal/model"
)

// ValidateEligibility decides whether a customer may open a credit of the
// requested type. It is a pure, total function: every (credit type, customer
// type) pair maps to exactly one outcome.
//
// Rules:
//   - PERSONAL customers may hold at most one personal loan and any number
//     of credit cards; business loans are never allowed.
//   - BUSINESS customers may hold any number of business loans and credit
//     cards; personal loans are never allowed.
//
// personalLoanCount must be the live count from the store at validation time;
// a stale count would admit two concurrent requests past the one-loan limit.
func ValidateEligibility(requested model.CreditType, customerType model.CustomerType, personalLoanCount int64) error {
	switch customerType {
	case model.CustomerTypePersonal:
		switch requested {
		case model.CreditTypePersonalLoan:
			if personalLoanCount > 0 {
				return errors.NewBusinessRule("personal customer can only have one personal loan")
			}
			return nil
		case model.CreditTypeCreditCard:
			return nil
		case model.CreditTypeBusinessLoan:
			return errors.NewBusinessRule("personal customers cannot have business loans")
		}
	case model.CustomerTypeBusiness:
		switch requested {
		case model.CreditTypePersonalLoan:
			return errors.NewBusinessRule("business customers cannot have personal loans")
		case model.CreditTypeBusinessLoan, model.CreditTypeCreditCard:
			return nil
		}
	}
	return errors.NewBusinessRule(fmt.Sprintf("unsupported credit type %q for customer type %q", requested, customerType))
}
