package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ustadmustafa/TennisBetRecommender/internal/logic"
	"github.com/ustadmustafa/TennisBetRecommender/internal/worker"
)

// BatchRequest is the body of a batch prediction request
type BatchRequest struct {
	Matchups []worker.Matchup `json:"matchups" validate:"required,min=1,max=25,dive"`
}

// matchup parses and validates a pair of raw player keys
func (h *Handler) matchup(raw1, raw2 string) (worker.Matchup, error) {
	p1, err := parseKey(raw1)
	if err != nil {
		return worker.Matchup{}, err
	}
	p2, err := parseKey(raw2)
	if err != nil {
		return worker.Matchup{}, err
	}
	m := worker.Matchup{Player1: p1, Player2: p2}
	if err := h.validator.Struct(m); err != nil {
		return worker.Matchup{}, errors.New("player1 and player2 must be distinct positive keys")
	}
	return m, nil
}

// analysisError writes the response for an error returned by the analysis service
func (h *Handler) analysisError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, logic.ErrContractViolation):
		h.logger.Errorw("Prediction contract violated", "operation", op, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Prediction contract violated")
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warnw("Analysis timed out", "operation", op, "error", err)
		h.errorResponse(w, http.StatusGatewayTimeout, "Analysis timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send
		h.logger.Infow("Analysis canceled", "operation", op)
	default:
		h.logger.Errorw("Analysis failed", "operation", op, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetMatchPredictions returns the five betting predictions for a matchup
// @Summary Get match betting predictions
// @Description Match winner, total sets, first set, handicap and comeback predictions for two players
// @Tags Predictions
// @Produce json
// @Param player1 query int true "First player key"
// @Param player2 query int true "Second player key"
// @Success 200 {object} models.MatchBettingPredictions
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /predictions [get]
func (h *Handler) GetMatchPredictions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m, err := h.matchup(q.Get("player1"), q.Get("player2"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	preds, err := h.analysis.GetMatchPredictions(r.Context(), m.Player1, m.Player2)
	if err != nil {
		h.analysisError(w, "predictions", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, preds)
}

// BatchPredictions runs up to MaxBatchSize matchups through the worker pool
// @Summary Batch match predictions
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Matchups to predict"
// @Success 200 {object} worker.BatchResult
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /predictions/batch [post]
func (h *Handler) BatchPredictions(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "matchups must hold 1 to 25 pairs of distinct positive player keys")
		return
	}

	result, err := h.batch.RunBatch(r.Context(), req.Matchups)
	if err != nil {
		switch {
		case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrPoolStopped):
			h.logger.Warnw("Batch rejected", "size", len(req.Matchups), "error", err)
			w.Header().Set("Retry-After", "1")
			h.errorResponse(w, http.StatusServiceUnavailable, "Prediction queue is full, retry later")
		default:
			h.analysisError(w, "batch", err)
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
