package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetPlayerPerformance returns the current-season performance profile
// @Summary Player performance profile
// @Tags Players
// @Produce json
// @Param playerKey path int true "Player key"
// @Success 200 {object} models.PlayerPerformanceProfile
// @Failure 400 {object} map[string]string
// @Router /players/{playerKey}/performance [get]
func (h *Handler) GetPlayerPerformance(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(chi.URLParam(r, "playerKey"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.analysis.AnalyzePlayer(r.Context(), key)
	if err != nil {
		h.analysisError(w, "performance", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, profile)
}

// GetPlayerAnalysis returns the career overview for a player
// @Summary Player career analysis
// @Tags Players
// @Produce json
// @Param playerKey path int true "Player key"
// @Success 200 {object} models.PlayerAnalysis
// @Failure 400 {object} map[string]string
// @Router /players/{playerKey}/analysis [get]
func (h *Handler) GetPlayerAnalysis(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(chi.URLParam(r, "playerKey"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.analysis.GetPlayerAnalysis(r.Context(), key)
	if err != nil {
		h.analysisError(w, "player_analysis", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, analysis)
}
