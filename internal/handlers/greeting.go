// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/cloud-compute-demo/internal/greeting"
	"github.com/sebasr/cloud-compute-demo/internal/models"
)

// greetingRequestBody distinguishes a missing name from an empty one
type greetingRequestBody struct {
	Name *string `json:"name" binding:"required"`
}

// GreetingHandler handles POST /api/hello
func GreetingHandler(c *gin.Context) {
	var body greetingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{
			Detail: "Invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := greeting.Greet(models.GreetingRequest{Name: *body.Name}).Result()
	if err != nil {
		if greeting.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorDetail{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
