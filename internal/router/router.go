package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"creditbank/internal/handler"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, creditHandler *handler.CreditHandler) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Credit routes
	api.POST("/credits", creditHandler.Create)
	api.GET("/credits", creditHandler.ListAll)
	api.GET("/credits/:id", creditHandler.GetByID)
	api.PUT("/credits/:id", creditHandler.Update)
	api.DELETE("/credits/:id", creditHandler.Delete)
	api.POST("/credits/:id/charge", creditHandler.Charge)
	api.POST("/credits/:id/payment", creditHandler.Payment)
	api.GET("/credits/number/:creditNumber", creditHandler.GetByCreditNumber)
	api.GET("/credits/customer/:customerId", creditHandler.ListByCustomer)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
