package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"creditbank/internal/config"
	"creditbank/internal/db"
	"creditbank/internal/model"
	"creditbank/internal/repository"
)

// Demo credits for local development. Balances respect the card invariant
// balance + credit_limit == credit_amount.
var seedCredits = []model.Credit{
	{
		CreditNumber:   "CRD-SEEDLOAN01",
		CreditType:     model.CreditTypeBusinessLoan,
		CustomerID:     "business-demo-1",
		CreditAmount:   decimal.NewFromInt(10000),
		Balance:        decimal.Zero,
		CreditLimit:    decimal.NewFromInt(10000),
		InterestRate:   decimal.NewFromFloat(2.5),
		MinimumPayment: decimal.NewFromInt(350),
		PaymentDueDay:  5,
		Active:         true,
	},
	{
		CreditNumber:   "CRD-SEEDCARD01",
		CreditType:     model.CreditTypeCreditCard,
		CustomerID:     "personal-demo-1",
		CreditAmount:   decimal.NewFromInt(1000),
		Balance:        decimal.NewFromInt(250),
		CreditLimit:    decimal.NewFromInt(750),
		InterestRate:   decimal.NewFromFloat(4.2),
		MinimumPayment: decimal.NewFromInt(50),
		PaymentDueDay:  15,
		Active:         true,
	},
	{
		CreditNumber:   "CRD-SEEDLOAN02",
		CreditType:     model.CreditTypePersonalLoan,
		CustomerID:     "personal-demo-1",
		CreditAmount:   decimal.NewFromInt(5000),
		Balance:        decimal.NewFromInt(5000),
		CreditLimit:    decimal.Zero,
		InterestRate:   decimal.NewFromFloat(3.1),
		MinimumPayment: decimal.NewFromInt(200),
		PaymentDueDay:  1,
		Active:         true,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Credit{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewCreditRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for i := range seedCredits {
		credit := seedCredits[i]

		_, err := repo.FindByCreditNumber(ctx, credit.CreditNumber)
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check credit %s: %v", credit.CreditNumber, err)
		}

		if err := repo.Create(ctx, &credit); err != nil {
			log.Fatalf("Failed to seed credit %s: %v", credit.CreditNumber, err)
		}
		created++
	}

	log.Printf("Seed completed: %d created, %d already present", created, skipped)
}
