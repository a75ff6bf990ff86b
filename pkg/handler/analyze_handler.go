package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pchalerm/dnarisk/logger"
	"github.com/pchalerm/dnarisk/pkg/metrics"
	"github.com/pchalerm/dnarisk/pkg/model"
	"github.com/pchalerm/dnarisk/pkg/render"
	"go.uber.org/zap"

	"github.com/pchalerm/dnarisk/pkg/handler/request"
)

// How many detections the ranking section shows.
const topRiskCount = 3

// Uploaded sequence files are small, human-scale inputs.
const maxUploadBytes = 10 << 20

// AnalyzeResponse is the JSON envelope for analysis results.
type AnalyzeResponse struct {
	Status     string            `json:"status"`
	Detections []model.Detection `json:"detections"`
	Summary    model.RiskSummary `json:"summary"`
	TopRisks   []model.Detection `json:"top_risks"`
	Error      string            `json:"error,omitempty"`
}

// MainPage serves the upload form.
func (appctx *AppContext) MainPage(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.RenderIndexPage(w, render.IndexPageData{
		DefaultThreshold: appctx.DefaultThreshold,
		MarkerCount:      len(appctx.Markers),
	})
}

// AnalyzeAPI handles POST /api/v1/analyze with a JSON body.
func (appctx *AppContext) AnalyzeAPI(w http.ResponseWriter, r *http.Request) {

	var req request.AnalyzeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error(err.Error())
		metrics.AnalysesTotal.WithLabelValues("bad_request").Inc()
		writeAnalyzeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Sequence) == "" {
		metrics.AnalysesTotal.WithLabelValues("bad_request").Inc()
		writeAnalyzeError(w, http.StatusBadRequest, "Sequence cannot be empty")
		return
	}

	threshold := appctx.DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
		if threshold < 0 || threshold > 1 {
			metrics.AnalysesTotal.WithLabelValues("bad_request").Inc()
			writeAnalyzeError(w, http.StatusBadRequest, "Threshold must be between 0 and 1")
			return
		}
	}

	cleaned, err := model.CleanSequence(req.Sequence)
	if err != nil {
		var seqErr *model.InvalidSequenceError
		if errors.As(err, &seqErr) {
			metrics.AnalysesTotal.WithLabelValues("invalid_sequence").Inc()
			writeAnalyzeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Unexpected sequence cleaning failure", zap.Error(err))
		writeAnalyzeError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	result := appctx.runAnalysis(cleaned, threshold)

	response := AnalyzeResponse{
		Status:     "ok",
		Detections: result.Detections,
		Summary:    result.Summary,
		TopRisks:   model.TopByRisk(result.Detections, topRiskCount),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// AnalyzePage handles the upload form: a sequence file or pasted text plus
// a threshold field, rendered as an HTML results page.
func (appctx *AppContext) AnalyzePage(w http.ResponseWriter, r *http.Request) {

	rawSequence, err := readFormSequence(r)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("bad_request").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	threshold, err := appctx.thresholdFromForm(r.FormValue("threshold"))
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("bad_request").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cleaned, err := model.CleanSequence(rawSequence)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("invalid_sequence").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := appctx.runAnalysis(cleaned, threshold)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.RenderResultPage(w, render.ResultPageData{
		Sequence:   cleaned,
		Threshold:  threshold,
		Detections: result.Detections,
		Summary:    result.Summary,
		TopRisks:   model.TopByRisk(result.Detections, topRiskCount),
	})
}

// runAnalysis is the shared engine call behind both surfaces.
func (appctx *AppContext) runAnalysis(cleaned string, threshold float64) model.AnalysisResult {
	result := model.Analyze(cleaned, appctx.Markers, threshold)

	metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	metrics.DetectionsTotal.Add(float64(result.Summary.DetectedCount))
	metrics.SequenceLength.Observe(float64(len(cleaned)))

	logger.Debug("Sequence analyzed",
		zap.Int("sequence_length", len(cleaned)),
		zap.Float64("threshold", threshold),
		zap.Int("detected_count", result.Summary.DetectedCount),
		zap.Float64("total_risk_score", result.Summary.TotalRiskScore),
	)

	return result
}

// readFormSequence pulls the raw sequence text out of a form submission,
// preferring an uploaded file over the textarea.
func readFormSequence(r *http.Request) (string, error) {

	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", fmt.Errorf("Invalid upload form")
		}

		file, _, err := r.FormFile("sequence_file")
		switch {
		case err == nil:
			defer file.Close()
			data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
			if readErr != nil {
				return "", fmt.Errorf("Failed to read uploaded file")
			}
			if strings.TrimSpace(string(data)) != "" {
				return string(data), nil
			}
		case errors.Is(err, http.ErrMissingFile):
			// fall through to the textarea value
		default:
			return "", fmt.Errorf("Invalid upload form")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return "", fmt.Errorf("Invalid form")
		}
	}

	sequence := r.FormValue("sequence")
	if strings.TrimSpace(sequence) == "" {
		return "", fmt.Errorf("Sequence cannot be empty")
	}
	return sequence, nil
}

func (appctx *AppContext) thresholdFromForm(value string) (float64, error) {
	if strings.TrimSpace(value) == "" {
		return appctx.DefaultThreshold, nil
	}

	threshold, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("Threshold must be a number")
	}
	if threshold < 0 || threshold > 1 {
		return 0, fmt.Errorf("Threshold must be between 0 and 1")
	}
	return threshold, nil
}

func writeAnalyzeError(w http.ResponseWriter, code int, message string) {
	response := AnalyzeResponse{
		Status: "error",
		Error:  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
