package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crisvieira/satisfaction-server/config"
)

// Static catalog endpoints consumed by the survey frontends.

// GET /api/branches
func GetBranches(c *gin.Context) {
	c.JSON(http.StatusOK, config.Branches)
}

// GET /api/contexts
func GetContexts(c *gin.Context) {
	c.JSON(http.StatusOK, config.CSATContexts)
}
