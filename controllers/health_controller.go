package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crisvieira/satisfaction-server/store"
)

type HealthController struct {
	Store store.ResponseStore
}

func NewHealthController(s store.ResponseStore) *HealthController {
	return &HealthController{Store: s}
}

func (ctl *HealthController) HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":  "ok",
		"message": "Service is healthy",
		"store":   "ok",
	}

	if err := ctl.Store.Ping(c.Request.Context()); err != nil {
		response["status"] = "degraded"
		response["store"] = "error: cannot reach store"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
