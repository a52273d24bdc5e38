package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/service"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/pkg/response"
)

// PipelineHandler handles HTTP requests for pipeline runs
type PipelineHandler struct {
	pipelineService *service.PipelineService
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
	}
}

// Refresh handles POST /api/v1/pipeline/refresh. The refresh runs
// synchronously; the response carries the finished run diagnostics.
func (h *PipelineHandler) Refresh(c *gin.Context) {
	run, err := h.pipelineService.Refresh()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, run)
}

// GetRuns handles GET /api/v1/runs
func (h *PipelineHandler) GetRuns(c *gin.Context) {
	limit, ok := intParam(c, "limit", 20)
	if !ok {
		return
	}

	runs, err := h.pipelineService.GetRuns(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, runs)
}

// GetLatestRun handles GET /api/v1/runs/latest
func (h *PipelineHandler) GetLatestRun(c *gin.Context) {
	run, err := h.pipelineService.GetLatestRun()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if run == nil {
		response.NotFound(c, "The pipeline has not run yet")
		return
	}

	response.Success(c, run)
}
