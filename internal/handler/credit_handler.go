package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"creditbank/internal/errors"
	"creditbank/internal/model"
	"creditbank/internal/service"
)

// CreditHandler handles credit endpoints.
type CreditHandler struct {
	creditService service.CreditService
}

// NewCreditHandler creates a new credit handler.
func NewCreditHandler(creditService service.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// CreateCreditRequest represents a credit creation request.
type CreateCreditRequest struct {
	CreditType     string `json:"credit_type" validate:"required,oneof=PERSONAL_LOAN BUSINESS_LOAN CREDIT_CARD"`
	CustomerID     string `json:"customer_id" validate:"required"`
	CreditAmount   string `json:"credit_amount" validate:"required"`
	InterestRate   string `json:"interest_rate" validate:"omitempty"`
	MinimumPayment string `json:"minimum_payment" validate:"omitempty"`
	PaymentDueDay  int    `json:"payment_due_day" validate:"omitempty,min=1,max=31"`
}

// UpdateCreditRequest represents a descriptive-field update request.
type UpdateCreditRequest struct {
	InterestRate   string `json:"interest_rate" validate:"omitempty"`
	MinimumPayment string `json:"minimum_payment" validate:"omitempty"`
	PaymentDueDay  int    `json:"payment_due_day" validate:"omitempty,min=1,max=31"`
}

// AmountRequest represents a charge or payment request.
type AmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// CreditResponse represents a credit in API responses.
type CreditResponse struct {
	ID              uuid.UUID `json:"id"`
	CreditNumber    string    `json:"credit_number"`
	CreditType      string    `json:"credit_type"`
	CustomerID      string    `json:"customer_id"`
	CreditAmount    string    `json:"credit_amount"`
	Balance         string    `json:"balance"`
	CreditLimit     string    `json:"credit_limit"`
	AvailableCredit string    `json:"available_credit"`
	InterestRate    string    `json:"interest_rate"`
	MinimumPayment  string    `json:"minimum_payment"`
	PaymentDueDay   int       `json:"payment_due_day"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toCreditResponse(credit *model.Credit) CreditResponse {
	return CreditResponse{
		ID:              credit.ID,
		CreditNumber:    credit.CreditNumber,
		CreditType:      string(credit.CreditType),
		CustomerID:      credit.CustomerID,
		CreditAmount:    credit.CreditAmount.String(),
		Balance:         credit.Balance.String(),
		CreditLimit:     credit.CreditLimit.String(),
		AvailableCredit: credit.AvailableCredit().String(),
		InterestRate:    credit.InterestRate.String(),
		MinimumPayment:  credit.MinimumPayment.String(),
		PaymentDueDay:   credit.PaymentDueDay,
		Active:          credit.Active,
		CreatedAt:       credit.CreatedAt,
		UpdatedAt:       credit.UpdatedAt,
	}
}

func toCreditResponses(credits []model.Credit) []CreditResponse {
	responses := make([]CreditResponse, 0, len(credits))
	for i := range credits {
		responses = append(responses, toCreditResponse(&credits[i]))
	}
	return responses
}

// Create godoc
// @Summary Create a new credit
// @Tags credits
// @Accept json
// @Produce json
// @Param request body CreateCreditRequest true "Credit data"
// @Success 201 {object} CreditResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /credits [post]
func (h *CreditHandler) Create(c echo.Context) error {
	var req CreateCreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	amount, err := parsePositiveAmount(req.CreditAmount)
	if err != nil {
		return invalidAmount(err)
	}
	interestRate, err := parseOptionalAmount(req.InterestRate)
	if err != nil {
		return invalidAmount(err)
	}
	minimumPayment, err := parseOptionalAmount(req.MinimumPayment)
	if err != nil {
		return invalidAmount(err)
	}

	credit, err := h.creditService.Create(c.Request().Context(), service.CreateCreditInput{
		CreditType:     model.CreditType(req.CreditType),
		CustomerID:     req.CustomerID,
		CreditAmount:   amount,
		InterestRate:   interestRate,
		MinimumPayment: minimumPayment,
		PaymentDueDay:  req.PaymentDueDay,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toCreditResponse(credit))
}

// Charge godoc
// @Summary Make a charge to a credit card
// @Tags credits
// @Accept json
// @Produce json
// @Param id path string true "Credit ID"
// @Param request body AmountRequest true "Charge amount"
// @Success 200 {object} CreditResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /credits/{id}/charge [post]
func (h *CreditHandler) Charge(c echo.Context) error {
	id, amount, err := h.bindAmountRequest(c)
	if err != nil {
		return err
	}

	credit, svcErr := h.creditService.Charge(c.Request().Context(), id, amount)
	if svcErr != nil {
		httpErr := errors.MapErrorToHTTP(svcErr)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponse(credit))
}

// Payment godoc
// @Summary Make a payment to a credit
// @Tags credits
// @Accept json
// @Produce json
// @Param id path string true "Credit ID"
// @Param request body AmountRequest true "Payment amount"
// @Success 200 {object} CreditResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /credits/{id}/payment [post]
func (h *CreditHandler) Payment(c echo.Context) error {
	id, amount, err := h.bindAmountRequest(c)
	if err != nil {
		return err
	}

	credit, svcErr := h.creditService.Payment(c.Request().Context(), id, amount)
	if svcErr != nil {
		httpErr := errors.MapErrorToHTTP(svcErr)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponse(credit))
}

// Update godoc
// @Summary Update credit descriptive fields
// @Tags credits
// @Accept json
// @Produce json
// @Param id path string true "Credit ID"
// @Param request body UpdateCreditRequest true "Update data"
// @Success 200 {object} CreditResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /credits/{id} [put]
func (h *CreditHandler) Update(c echo.Context) error {
	id, err := parseCreditID(c)
	if err != nil {
		return err
	}

	var req UpdateCreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	interestRate, err := parseOptionalAmount(req.InterestRate)
	if err != nil {
		return invalidAmount(err)
	}
	minimumPayment, err := parseOptionalAmount(req.MinimumPayment)
	if err != nil {
		return invalidAmount(err)
	}

	credit, svcErr := h.creditService.Update(c.Request().Context(), id, service.UpdateCreditInput{
		InterestRate:   interestRate,
		MinimumPayment: minimumPayment,
		PaymentDueDay:  req.PaymentDueDay,
	})
	if svcErr != nil {
		httpErr := errors.MapErrorToHTTP(svcErr)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponse(credit))
}

// Delete godoc
// @Summary Delete a credit
// @Tags credits
// @Param id path string true "Credit ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /credits/{id} [delete]
func (h *CreditHandler) Delete(c echo.Context) error {
	id, err := parseCreditID(c)
	if err != nil {
		return err
	}

	if svcErr := h.creditService.Delete(c.Request().Context(), id); svcErr != nil {
		httpErr := errors.MapErrorToHTTP(svcErr)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetByID godoc
// @Summary Get credit by ID
// @Tags credits
// @Produce json
// @Param id path string true "Credit ID"
// @Success 200 {object} CreditResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /credits/{id} [get]
func (h *CreditHandler) GetByID(c echo.Context) error {
	id, err := parseCreditID(c)
	if err != nil {
		return err
	}

	credit, svcErr := h.creditService.FindByID(c.Request().Context(), id)
	if svcErr != nil {
		httpErr := errors.MapErrorToHTTP(svcErr)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponse(credit))
}

// GetByCreditNumber godoc
// @Summary Get credit by credit number
// @Tags credits
// @Produce json
// @Param creditNumber path string true "Credit number"
// @Success 200 {object} CreditResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /credits/number/{creditNumber} [get]
func (h *CreditHandler) GetByCreditNumber(c echo.Context) error {
	credit, err := h.creditService.FindByCreditNumber(c.Request().Context(), c.Param("creditNumber"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponse(credit))
}

// ListAll godoc
// @Summary List all credits
// @Tags credits
// @Produce json
// @Success 200 {array} CreditResponse
// @Router /credits [get]
func (h *CreditHandler) ListAll(c echo.Context) error {
	credits, err := h.creditService.FindAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponses(credits))
}

// ListByCustomer godoc
// @Summary List credits by customer
// @Tags credits
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} CreditResponse
// @Router /credits/customer/{customerId} [get]
func (h *CreditHandler) ListByCustomer(c echo.Context) error {
	credits, err := h.creditService.FindByCustomerID(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCreditResponses(credits))
}

func (h *CreditHandler) bindAmountRequest(c echo.Context) (uuid.UUID, decimal.Decimal, error) {
	id, err := parseCreditID(c)
	if err != nil {
		return uuid.Nil, decimal.Zero, err
	}

	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, decimal.Zero, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return uuid.Nil, decimal.Zero, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		return uuid.Nil, decimal.Zero, invalidAmount(err)
	}
	return id, amount, nil
}

func parseCreditID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid credit ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return amount, nil
}

func parseOptionalAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func invalidAmount(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: fmt.Sprintf("amount must be a positive decimal: %v", err),
		Code:  "INVALID_AMOUNT",
	})
}
