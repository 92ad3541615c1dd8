package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/flounder11/online-coffee-api/pkg/resp"
	"github.com/flounder11/online-coffee-api/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Checkout *services.CheckoutService
	Orders   *services.OrderService
}

func NewCartController(checkout *services.CheckoutService, orders *services.OrderService) *CartController {
	return &CartController{Checkout: checkout, Orders: orders}
}

// POST /api/cart
func (ctl *CartController) Create(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Checkout.Checkout(&req)
	if err != nil {
		if services.IsValidationError(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		// storage fault: the transaction has already been rolled back
		resp.ServerError(c, errors.New("failed to place order"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "order placed successfully",
		"order":   order,
	})
}

// GET /api/cart/order/:id
func (ctl *CartController) OrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := ctl.Orders.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
