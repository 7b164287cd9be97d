package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rchilly/sscan"
	"github.com/rchilly/sscan/internal/config"
	"github.com/rchilly/sscan/internal/output"
)

// ScanRequest is the body of POST /api/v1/scan. Format is required but
// may be empty. Exactly one of Input and Inputs must be set.
type ScanRequest struct {
	Format *string  `json:"format"`
	Input  *string  `json:"input"`
	Inputs []string `json:"inputs"`
}

// ScanResponse is the data of a successful scan request.
type ScanResponse struct {
	Format    string       `json:"format"`
	VerbCount int          `json:"verb_count"`
	Results   []output.Row `json:"results"`
}

// ScanHandler handles scan endpoints.
type ScanHandler struct {
	maxInputs int
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(cfg config.ScanConfig) *ScanHandler {
	return &ScanHandler{maxInputs: cfg.MaxInputs}
}

// Scan handles POST /api/v1/scan
func (h *ScanHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if req.Format == nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "'format' is required")
		return
	}

	inputs := req.Inputs
	switch {
	case req.Input != nil && len(req.Inputs) > 0:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "set either 'input' or 'inputs', not both")
		return
	case req.Input != nil:
		inputs = []string{*req.Input}
	case len(inputs) == 0:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "one of 'input' or 'inputs' is required")
		return
	}

	if len(inputs) > h.maxInputs {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_INPUTS",
			fmt.Sprintf("got %d inputs; at most %d allowed", len(inputs), h.maxInputs))
		return
	}

	scanner, err := sscan.NewScanner(*req.Format)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "BAD_FORMAT", err.Error())
		return
	}

	resp := ScanResponse{
		Format:    scanner.String(),
		VerbCount: scanner.VerbCount(),
		Results:   make([]output.Row, 0, len(inputs)),
	}
	for _, input := range inputs {
		res, err := scanner.ScanValues(input)
		resp.Results = append(resp.Results, output.NewRow(0, input, res, err))
	}

	RespondOK(c, resp)
}

// Liveness handles GET /healthz
func (h *ScanHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
