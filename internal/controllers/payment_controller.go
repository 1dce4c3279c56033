package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/payments"
)

// PaymentController bridges checkout requests to the payment gateway.
type PaymentController struct {
	gateway payments.Gateway
}

// NewPaymentController creates a new instance of PaymentController
func NewPaymentController(gateway payments.Gateway) *PaymentController {
	return &PaymentController{gateway: gateway}
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent
// @Description Converts the price to minor units and requests a card-payable intent in USD
// @Tags payments
// @Accept json
// @Produce json
// @Param body body object true "{price: number}"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /create-payment-intent [post]
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	amount := payments.MinorUnits(req.Price)
	clientSecret, err := pc.gateway.CreateIntent(c.Request.Context(), amount, payments.CurrencyUSD)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
