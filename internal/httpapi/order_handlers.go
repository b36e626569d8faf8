package httpapi

import (
	"net/http"
	"strconv"

	"stylehub-be/internal/middleware"
	"stylehub-be/internal/order"

	"github.com/gin-gonic/gin"
)

func listOrdersHandler(orderSvc order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := orderSvc.List(c.Request.Context(), caller)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func createOrderHandler(orderSvc order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input order.NewOrder
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		o, err := orderSvc.Create(c.Request.Context(), caller.ID, input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"order":   o,
		})
	}
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

func updateOrderStatusHandler(orderSvc order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		o, err := orderSvc.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated",
			"order":   o,
		})
	}
}
