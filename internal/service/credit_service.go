package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"creditbank/internal/cache"
	"creditbank/internal/errors"
	"creditbank/internal/model"
	"creditbank/internal/repository"
)

const creditCacheTTL = 5 * time.Minute

// CustomerGateway resolves account owners from the remote customer service.
type CustomerGateway interface {
	GetCustomerByID(ctx context.Context, customerID string) (*model.Customer, error)
}

// CreateCreditInput carries the fields needed to open a credit.
type CreateCreditInput struct {
	CreditType     model.CreditType
	CustomerID     string
	CreditAmount   decimal.Decimal
	InterestRate   decimal.Decimal
	MinimumPayment decimal.Decimal
	PaymentDueDay  int
}

// UpdateCreditInput carries the descriptive fields a credit update may change.
// Balance, limit, type, and owner are never updatable.
type UpdateCreditInput struct {
	InterestRate   decimal.Decimal
	MinimumPayment decimal.Decimal
	PaymentDueDay  int
}

// CreditService orchestrates credit creation, charge and payment mutations,
// and lookups.
type CreditService interface {
	Create(ctx context.Context, input CreateCreditInput) (*model.Credit, error)
	Charge(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Credit, error)
	Payment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Credit, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCreditInput) (*model.Credit, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error)
	FindByCreditNumber(ctx context.Context, creditNumber string) (*model.Credit, error)
	FindAll(ctx context.Context) ([]model.Credit, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]model.Credit, error)
}

type creditService struct {
	repo      repository.CreditRepository
	customers CustomerGateway
	cache     *cache.Client
	// Per-customer serialization for creation: the personal-loan count check
	// and the insert must not interleave for the same customer.
	customerMutexes sync.Map
}

// NewCreditService creates a new credit service.
func NewCreditService(repo repository.CreditRepository, customers CustomerGateway, cache *cache.Client) CreditService {
	return &creditService{
		repo:      repo,
		customers: customers,
		cache:     cache,
	}
}

// getMutex returns a mutex for a specific customer ID.
func (s *creditService) getMutex(customerID string) *sync.Mutex {
	value, _ := s.customerMutexes.LoadOrStore(customerID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// Create opens a new credit after resolving the owner and validating
// eligibility against the live account counts.
func (s *creditService) Create(ctx context.Context, input CreateCreditInput) (*model.Credit, error) {
	cust, err := s.customers.GetCustomerByID(ctx, input.CustomerID)
	if err != nil {
		// NotFound and ErrDependencyUnavailable pass through unchanged.
		return nil, err
	}

	mutex := s.getMutex(input.CustomerID)
	mutex.Lock()
	defer mutex.Unlock()

	credit := &model.Credit{
		CreditNumber:   model.NewCreditNumber(),
		CreditType:     input.CreditType,
		CustomerID:     input.CustomerID,
		CreditAmount:   input.CreditAmount,
		Balance:        decimal.Zero,
		CreditLimit:    input.CreditAmount,
		InterestRate:   input.InterestRate,
		MinimumPayment: input.MinimumPayment,
		PaymentDueDay:  input.PaymentDueDay,
		Active:         true,
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.CreditRepository) error {
		count, err := txRepo.CountByCustomerIDAndType(ctx, input.CustomerID, model.CreditTypePersonalLoan)
		if err != nil {
			return fmt.Errorf("count personal loans: %w", err)
		}
		if err := ValidateEligibility(input.CreditType, cust.CustomerType, count); err != nil {
			return err
		}
		return txRepo.Create(ctx, credit)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("credit created: %s (%s) for customer %s", credit.CreditNumber, credit.CreditType, credit.CustomerID)
	return credit, nil
}

// Charge applies a charge to a credit card, moving value from the credit
// limit into the balance. The whole load-check-mutate-save sequence runs in
// one transaction against a locked row so concurrent charges cannot lose
// updates.
func (s *creditService) Charge(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Credit, error) {
	var credit *model.Credit
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.CreditRepository) error {
		found, err := txRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFound("credit", id.String())
			}
			return err
		}

		if !found.IsCreditCard() {
			return errors.NewBusinessRule("charges can only be made to credit cards")
		}
		if !found.Active {
			return errors.NewBusinessRule("cannot charge to inactive credit")
		}

		available := found.AvailableCredit()
		if amount.GreaterThan(available) {
			return errors.NewInsufficientCredit(amount, available)
		}

		found.Balance = found.Balance.Add(amount)
		found.CreditLimit = found.CreditLimit.Sub(amount)
		found.UpdatedAt = time.Now()

		if err := txRepo.Update(ctx, found); err != nil {
			return fmt.Errorf("save credit: %w", err)
		}
		credit = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, credit)
	log.Printf("charge of %s applied to credit %s, new balance %s", amount, credit.CreditNumber, credit.Balance)
	return credit, nil
}

// Payment applies a payment, reducing the balance. Credit cards also get
// their spending headroom restored.
func (s *creditService) Payment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Credit, error) {
	var credit *model.Credit
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.CreditRepository) error {
		found, err := txRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFound("credit", id.String())
			}
			return err
		}

		if !found.Active {
			return errors.NewBusinessRule("cannot make payment to inactive credit")
		}
		if amount.GreaterThan(found.Balance) {
			return errors.NewBusinessRule("payment amount cannot exceed current balance")
		}

		found.Balance = found.Balance.Sub(amount)
		if found.IsCreditCard() {
			found.CreditLimit = found.CreditLimit.Add(amount)
		}
		found.UpdatedAt = time.Now()

		if err := txRepo.Update(ctx, found); err != nil {
			return fmt.Errorf("save credit: %w", err)
		}
		credit = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, credit)
	log.Printf("payment of %s applied to credit %s, new balance %s", amount, credit.CreditNumber, credit.Balance)
	return credit, nil
}

// Update overwrites the descriptive fields of a credit.
func (s *creditService) Update(ctx context.Context, id uuid.UUID, input UpdateCreditInput) (*model.Credit, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("credit", id.String())
		}
		return nil, err
	}

	credit.InterestRate = input.InterestRate
	credit.MinimumPayment = input.MinimumPayment
	credit.PaymentDueDay = input.PaymentDueDay
	credit.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, credit); err != nil {
		return nil, fmt.Errorf("save credit: %w", err)
	}

	s.invalidate(ctx, credit)
	return credit, nil
}

// Delete removes a credit, distinguishing "already absent" from "removed".
func (s *creditService) Delete(ctx context.Context, id uuid.UUID) error {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFound("credit", id.String())
		}
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}

	s.invalidate(ctx, credit)
	log.Printf("credit deleted: %s", credit.CreditNumber)
	return nil
}

// FindByID retrieves a credit by ID with caching.
func (s *creditService) FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	key := s.idCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Credit
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("credit", id.String())
		}
		return nil, err
	}

	if payload, err := json.Marshal(credit); err == nil {
		_ = s.cache.Set(ctx, key, payload, creditCacheTTL)
	}
	return credit, nil
}

// FindByCreditNumber retrieves a credit by its human-facing number with caching.
func (s *creditService) FindByCreditNumber(ctx context.Context, creditNumber string) (*model.Credit, error) {
	key := s.numberCacheKey(creditNumber)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Credit
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	credit, err := s.repo.FindByCreditNumber(ctx, creditNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("credit", creditNumber)
		}
		return nil, err
	}

	if payload, err := json.Marshal(credit); err == nil {
		_ = s.cache.Set(ctx, key, payload, creditCacheTTL)
	}
	return credit, nil
}

// FindAll lists every credit. An empty store yields an empty slice.
func (s *creditService) FindAll(ctx context.Context) ([]model.Credit, error) {
	return s.repo.FindAll(ctx)
}

// FindByCustomerID lists a customer's credits. Unknown customers yield an
// empty slice, not an error.
func (s *creditService) FindByCustomerID(ctx context.Context, customerID string) ([]model.Credit, error) {
	return s.repo.FindByCustomerID(ctx, customerID)
}

func (s *creditService) idCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("credit:%s", id.String())
}

func (s *creditService) numberCacheKey(creditNumber string) string {
	return fmt.Sprintf("credit:number:%s", creditNumber)
}

func (s *creditService) invalidate(ctx context.Context, credit *model.Credit) {
	_ = s.cache.Delete(ctx, s.idCacheKey(credit.ID))
	_ = s.cache.Delete(ctx, s.numberCacheKey(credit.CreditNumber))
}
