package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
	"github.com/crisvieira/satisfaction-server/store"
	"github.com/crisvieira/satisfaction-server/utils"
)

type AdminController struct {
	Store store.ResponseStore
}

func NewAdminController(s store.ResponseStore) *AdminController {
	return &AdminController{Store: s}
}

type LoginReq struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/admin/login
// ADMIN_PASSWORD_HASH (bcrypt) is preferred; ADMIN_PASSWORD (plain)
// is accepted for parity with older deployments. Neither set = login
// disabled.
func (ctl *AdminController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	ok := false
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		ok = utils.CheckPassword(hash, req.Password)
	} else if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
		ok = subtle.ConstantTimeCompare([]byte(plain), []byte(req.Password)) == 1
	} else {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Admin login is not configured"})
		return
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong password"})
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /api/admin/dashboard
// Combined stats plus the most recent responses, newest first.
func (ctl *AdminController) Dashboard(c *gin.Context) {
	records, err := ctl.Store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not load dashboard data"})
		return
	}

	const recentCount = 20
	recent := make([]models.SurveyResponse, 0, recentCount)
	for i := len(records) - 1; i >= 0 && len(recent) < recentCount; i-- {
		recent = append(recent, records[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"nps":    services.ComputeNPSStats(records),
		"csat":   services.ComputeCSATStats(records),
		"recent": recent,
	})
}
