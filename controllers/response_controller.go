package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crisvieira/satisfaction-server/config"
	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
	"github.com/crisvieira/satisfaction-server/store"
)

// ResponseController owns the ingestion and read paths. All mutation
// goes through Store.Append; validation happens strictly before it.
type ResponseController struct {
	Store   store.ResponseStore
	Catalog config.Catalog
}

func NewResponseController(s store.ResponseStore, catalog config.Catalog) *ResponseController {
	return &ResponseController{Store: s, Catalog: catalog}
}

// POST /api/responses
func (ctl *ResponseController) Submit(c *gin.Context) {
	var req services.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "invalid request body: " + err.Error()})
		return
	}

	vs, err := services.ValidateSubmission(req, ctl.Catalog)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.KindOf(err), "message": err.Error()})
		return
	}

	// Category is frozen at submission time; it is never recomputed
	// even if the classification rule changes later.
	vs.Category = services.Classify(vs.Instrument, vs.Score)

	rec, err := ctl.Store.Append(c.Request.Context(), vs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not store response"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// GET /api/responses?instrument=nps&branch=itajai&limit=100
func (ctl *ResponseController) List(c *gin.Context) {
	var (
		records []models.SurveyResponse
		err     error
	)

	if instParam := c.Query("instrument"); instParam != "" {
		instrument := models.Instrument(instParam)
		if !instrument.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "unknown instrument"})
			return
		}
		records, err = ctl.Store.ListByInstrument(c.Request.Context(), instrument)
	} else {
		records, err = ctl.Store.ListAll(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not list responses"})
		return
	}

	if branch := c.Query("branch"); branch != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.ContextTag == branch {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	// Optional cap: keep the most recent N, still in insertion order.
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit > 1000 {
		limit = 1000
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	if records == nil {
		records = []models.SurveyResponse{}
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/responses/:id
func (ctl *ResponseController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "invalid response id"})
		return
	}

	rec, err := ctl.Store.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": services.KindNotFound, "message": "response not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not load response"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GET /api/responses/stats?instrument=csat
// Without the instrument param both blocks are returned.
func (ctl *ResponseController) Stats(c *gin.Context) {
	records, err := ctl.Store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not compute stats"})
		return
	}

	switch models.Instrument(c.Query("instrument")) {
	case models.InstrumentNPS:
		c.JSON(http.StatusOK, services.ComputeNPSStats(records))
	case models.InstrumentCSAT:
		c.JSON(http.StatusOK, services.ComputeCSATStats(records))
	default:
		c.JSON(http.StatusOK, gin.H{
			"nps":  services.ComputeNPSStats(records),
			"csat": services.ComputeCSATStats(records),
		})
	}
}

// GET /api/responses/export
func (ctl *ResponseController) Export(c *gin.Context) {
	records, err := ctl.Store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not export responses"})
		return
	}

	data, err := services.ExportCSV(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.KindPersistenceFailure, "message": "could not render export"})
		return
	}

	filename := fmt.Sprintf("responses_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
