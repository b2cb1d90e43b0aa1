package service

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"illuminate/pkg/oracle"
)

// illuminateRequest is the cycle request body. Source tags the run in
// analytics; it defaults to "api".
type illuminateRequest struct {
	Source  string         `json:"source"`
	Payload map[string]any `json:"payload" binding:"required"`
}

// illuminateResponse returns the engine's result verbatim plus the
// analytics run ID.
type illuminateResponse struct {
	RunID  string                     `json:"run_id,omitempty"`
	Result *oracle.IlluminationResult `json:"result"`
}

func (s *Server) handleIlluminate(c *gin.Context) {
	var req illuminateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cycleRejections.WithLabelValues("decode").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Source == "" {
		req.Source = "api"
	}

	start := time.Now()
	result, err := s.engine.RunCycle(c.Request.Context(), oracle.Payload(req.Payload), s.registry)
	if err != nil {
		switch {
		case errors.Is(err, oracle.ErrInvalidPayload):
			cycleRejections.WithLabelValues("validation").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, oracle.ErrInvalidConfig):
			cycleRejections.WithLabelValues("config").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	cyclesTotal.WithLabelValues(result.Guardrails.Overall.String()).Inc()
	cycleAcuity.Observe(result.OverallAcuity)
	cycleDuration.Observe(time.Since(start).Seconds())

	runID := ""
	if s.store != nil {
		runID, err = s.store.SaveResult(req.Source, oracle.Payload(req.Payload), result)
		if err != nil {
			// Persistence trouble must not eat a completed result.
			s.log.Error("record run", "err", err)
		}
	}

	c.JSON(http.StatusOK, illuminateResponse{RunID: runID, Result: result})
}

func (s *Server) handleAnalyticsSummary(c *gin.Context) {
	summary, err := s.store.OracleAcuitySummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	histogram, err := s.store.GuardrailHistogram()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"oracles": summary, "guardrails": histogram})
}

func (s *Server) handleRecentRuns(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	runs, err := s.store.RecentRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
