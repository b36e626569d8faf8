package httpapi

import (
	"net/http"
	"strconv"

	"stylehub-be/internal/product"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(productSvc product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := product.ListOptions{
			Filter: product.ListFilter{
				Category: c.Query("category"),
			},
		}

		// Only the literal "true" filters; anything else means no filter.
		if c.Query("featured") == "true" {
			featured := true
			opts.Filter.Featured = &featured
		}

		opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		opts.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

		result, err := productSvc.List(c.Request.Context(), opts)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": result.Items,
			"pagination": gin.H{
				"page":  result.Page,
				"pages": result.Pages,
				"total": result.Total,
			},
		})
	}
}

func getProductHandler(productSvc product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		p, err := productSvc.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}

func createProductHandler(productSvc product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input product.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		p, err := productSvc.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"product": p,
		})
	}
}

func updateProductHandler(productSvc product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var input product.UpdateProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		p, err := productSvc.Update(c.Request.Context(), id, input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully",
			"product": p,
		})
	}
}

func deleteProductHandler(productSvc product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		if err := productSvc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
