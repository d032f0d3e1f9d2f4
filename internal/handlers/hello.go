package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/cloud-compute-demo/internal/models"
)

// RootMessage is the acknowledgment returned by the landing endpoint
const RootMessage = "Cloud Compute API is running"

// HelloHandler handles the root endpoint
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.GreetingResponse{Message: RootMessage})
}
