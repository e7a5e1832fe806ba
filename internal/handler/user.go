package handler

import (
	"fmt"
	"net/http"

	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/user"
)

// HandleGetPoints reports a user's point balance.
// @Summary Get user points
// @Tags user
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} ReplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/points [get]
func HandleGetPoints(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "username"))
			return
		}

		reply, err := userService.Points(r.Context(), username)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Points lookup failed", "username", username, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, ReplyResponse{Reply: reply})
	}
}

// LeaderboardResponse lists the top chatters.
type LeaderboardResponse struct {
	Entries []string `json:"entries"`
}

// HandleGetLeaderboard returns the top users by points.
// @Summary Get points leaderboard
// @Tags user
// @Produce json
// @Success 200 {object} LeaderboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/leaderboard [get]
func HandleGetLeaderboard(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := userService.Leaderboard(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Leaderboard failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgLeaderboardFailed)
			return
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
