package handler

import (
	"net/http"

	"github.com/dmaas/DumpsterBot_Go/internal/emoji"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/stocks"
)

// HandleGetTicker returns the current stock market line.
// @Summary Get stock ticker
// @Tags game
// @Produce json
// @Success 200 {object} ReplyResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/stocks [get]
func HandleGetTicker(stockService stocks.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticker, err := stockService.Ticker(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Ticker failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		respondJSON(w, http.StatusOK, ReplyResponse{Reply: ticker})
	}
}

// HandleGetStore returns the emoji store listing.
// @Summary Get emoji store listing
// @Tags game
// @Produce json
// @Success 200 {object} ReplyResponse
// @Router /game/store [get]
func HandleGetStore(emojiService emoji.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ReplyResponse{Reply: emojiService.StoreListing()})
	}
}
