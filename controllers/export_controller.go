package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
	"github.com/crisvieira/satisfaction-server/store"
)

// ExportController runs admin exports asynchronously: a job is queued,
// a goroutine renders the CSV to disk, the client polls for the file.
// Jobs live in process memory; only the rendered file survives a
// restart.
type ExportController struct {
	Store  store.ResponseStore
	OutDir string

	mu   sync.Mutex
	jobs map[string]*models.ExportJob
}

func NewExportController(s store.ResponseStore, outDir string) *ExportController {
	if outDir == "" {
		outDir = "./exports"
	}
	return &ExportController{Store: s, OutDir: outDir, jobs: make(map[string]*models.ExportJob)}
}

type ExportRequest struct {
	Instrument string  `json:"instrument,omitempty"` // nps, csat, or empty for both
	RangeFrom  *string `json:"range_from,omitempty"` // RFC3339
	RangeTo    *string `json:"range_to,omitempty"`
}

// POST /api/admin/export
func (ctl *ExportController) Create(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	instrument := models.Instrument(req.Instrument)
	if req.Instrument != "" && !instrument.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown instrument"})
		return
	}

	var fromPtr, toPtr *time.Time
	if req.RangeFrom != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeFrom); err == nil {
			fromPtr = &t
		}
	}
	if req.RangeTo != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeTo); err == nil {
			toPtr = &t
		}
	}

	job := &models.ExportJob{
		JobID:      uuid.New().String(),
		Instrument: instrument,
		Status:     models.ExportQueued,
		RangeFrom:  fromPtr,
		RangeTo:    toPtr,
		CreatedAt:  time.Now(),
	}

	ctl.mu.Lock()
	ctl.jobs[job.JobID] = job
	ctl.mu.Unlock()

	go ctl.process(job.JobID)

	c.JSON(http.StatusAccepted, gin.H{"job_id": job.JobID, "status": job.Status})
}

// GET /api/admin/exports/:job_id
func (ctl *ExportController) Get(c *gin.Context) {
	ctl.mu.Lock()
	job, ok := ctl.jobs[c.Param("job_id")]
	var snapshot models.ExportJob
	if ok {
		snapshot = *job
	}
	ctl.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": services.KindNotFound, "message": "export job not found"})
		return
	}

	if snapshot.Status == models.ExportDone && snapshot.FilePath != "" {
		c.FileAttachment(snapshot.FilePath, path.Base(snapshot.FilePath))
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (ctl *ExportController) process(jobID string) {
	ctl.setStatus(jobID, models.ExportProcessing, "", "")

	ctl.mu.Lock()
	job, ok := ctl.jobs[jobID]
	var snapshot models.ExportJob
	if ok {
		snapshot = *job
	}
	ctl.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		records []models.SurveyResponse
		err     error
	)
	if snapshot.Instrument != "" {
		records, err = ctl.Store.ListByInstrument(ctx, snapshot.Instrument)
	} else {
		records, err = ctl.Store.ListAll(ctx)
	}
	if err != nil {
		ctl.setStatus(jobID, models.ExportFailed, "", err.Error())
		return
	}

	if snapshot.RangeFrom != nil || snapshot.RangeTo != nil {
		filtered := records[:0:0]
		for _, r := range records {
			if snapshot.RangeFrom != nil && r.SubmittedAt.Before(*snapshot.RangeFrom) {
				continue
			}
			if snapshot.RangeTo != nil && r.SubmittedAt.After(*snapshot.RangeTo) {
				continue
			}
			filtered = append(filtered, r)
		}
		records = filtered
	}

	data, err := services.ExportCSV(records)
	if err != nil {
		ctl.setStatus(jobID, models.ExportFailed, "", err.Error())
		return
	}

	if err := os.MkdirAll(ctl.OutDir, 0755); err != nil {
		ctl.setStatus(jobID, models.ExportFailed, "", err.Error())
		return
	}
	outPath := path.Join(ctl.OutDir, fmt.Sprintf("export_%s.csv", jobID))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		ctl.setStatus(jobID, models.ExportFailed, "", err.Error())
		return
	}

	ctl.setStatus(jobID, models.ExportDone, outPath, "")
}

func (ctl *ExportController) setStatus(jobID, status, filePath, errMsg string) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if job, ok := ctl.jobs[jobID]; ok {
		job.Status = status
		if filePath != "" {
			job.FilePath = filePath
		}
		if errMsg != "" {
			job.ErrorMsg = errMsg
		}
	}
}
