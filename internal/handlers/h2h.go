package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetH2H returns the head-to-head summary for two players
// @Summary Head-to-head summary
// @Tags Analysis
// @Produce json
// @Param player1 path int true "First player key"
// @Param player2 path int true "Second player key"
// @Success 200 {object} models.H2HSummary
// @Failure 400 {object} map[string]string
// @Router /h2h/{player1}/{player2} [get]
func (h *Handler) GetH2H(w http.ResponseWriter, r *http.Request) {
	m, err := h.matchup(chi.URLParam(r, "player1"), chi.URLParam(r, "player2"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.analysis.AnalyzeH2H(r.Context(), m.Player1, m.Player2)
	if err != nil {
		h.analysisError(w, "h2h", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, summary)
}

// GetMatchAnalysis returns the full pre-match analysis for two players
// @Summary Match analysis
// @Description Both player overviews, the H2H summary and match list, and each player's recent matches
// @Tags Analysis
// @Produce json
// @Param player1 query int true "First player key"
// @Param player2 query int true "Second player key"
// @Success 200 {object} models.MatchAnalysis
// @Failure 400 {object} map[string]string
// @Router /matches/analysis [get]
func (h *Handler) GetMatchAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m, err := h.matchup(q.Get("player1"), q.Get("player2"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.analysis.AnalyzeMatch(r.Context(), m.Player1, m.Player2)
	if err != nil {
		h.analysisError(w, "match_analysis", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, analysis)
}
