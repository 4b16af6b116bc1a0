package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"creditbank/internal/model"
)

// CreditRepository defines credit persistence operations. All operations are
// per-record atomic; multi-step sequences run inside WithTransaction.
type CreditRepository interface {
	Create(ctx context.Context, credit *model.Credit) error
	Update(ctx context.Context, credit *model.Credit) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Credit, error)
	FindByCreditNumber(ctx context.Context, creditNumber string) (*model.Credit, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]model.Credit, error)
	FindByCustomerIDAndType(ctx context.Context, customerID string, creditType model.CreditType) ([]model.Credit, error)
	CountByCustomerIDAndType(ctx context.Context, customerID string, creditType model.CreditType) (int64, error)
	ExistsByCreditNumber(ctx context.Context, creditNumber string) (bool, error)
	FindAll(ctx context.Context) ([]model.Credit, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	// WithTransaction executes fn against a transaction-bound repository.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CreditRepository) error) error
}

type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit repository.
func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{db: db}
}

// Create inserts a new credit.
func (r *creditRepository) Create(ctx context.Context, credit *model.Credit) error {
	return r.db.WithContext(ctx).Create(credit).Error
}

// Update saves the full credit record.
func (r *creditRepository) Update(ctx context.Context, credit *model.Credit) error {
	return r.db.WithContext(ctx).Save(credit).Error
}

// FindByID finds a credit by ID.
func (r *creditRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	var credit model.Credit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&credit).Error; err != nil {
		return nil, err
	}
	return &credit, nil
}

// FindByIDForUpdate finds a credit by ID with a row-level lock. Only meaningful
// inside WithTransaction; the lock pins the record for the load-check-mutate-save
// sequence so concurrent charges and payments cannot lose updates.
func (r *creditRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	var credit model.Credit
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&credit).Error; err != nil {
		return nil, err
	}
	return &credit, nil
}

// FindByCreditNumber finds a credit by its human-facing number.
func (r *creditRepository) FindByCreditNumber(ctx context.Context, creditNumber string) (*model.Credit, error) {
	var credit model.Credit
	if err := r.db.WithContext(ctx).Where("credit_number = ?", creditNumber).First(&credit).Error; err != nil {
		return nil, err
	}
	return &credit, nil
}

// FindByCustomerID lists all credits owned by a customer.
func (r *creditRepository) FindByCustomerID(ctx context.Context, customerID string) ([]model.Credit, error) {
	var credits []model.Credit
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&credits).Error; err != nil {
		return nil, err
	}
	return credits, nil
}

// FindByCustomerIDAndType lists a customer's credits of one type.
func (r *creditRepository) FindByCustomerIDAndType(ctx context.Context, customerID string, creditType model.CreditType) ([]model.Credit, error) {
	var credits []model.Credit
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND credit_type = ?", customerID, creditType).
		Find(&credits).Error; err != nil {
		return nil, err
	}
	return credits, nil
}

// CountByCustomerIDAndType counts a customer's credits of one type.
func (r *creditRepository) CountByCustomerIDAndType(ctx context.Context, customerID string, creditType model.CreditType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Credit{}).
		Where("customer_id = ? AND credit_type = ?", customerID, creditType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCreditNumber reports whether a credit number is already taken.
func (r *creditRepository) ExistsByCreditNumber(ctx context.Context, creditNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Credit{}).
		Where("credit_number = ?", creditNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll lists every credit.
func (r *creditRepository) FindAll(ctx context.Context) ([]model.Credit, error) {
	var credits []model.Credit
	if err := r.db.WithContext(ctx).Find(&credits).Error; err != nil {
		return nil, err
	}
	return credits, nil
}

// DeleteByID removes a credit.
func (r *creditRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Credit{}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *creditRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CreditRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &creditRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
