package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmaas/DumpsterBot_Go/internal/command"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
)

// HandleMessageRequest represents one chat message to run through the
// command router.
type HandleMessageRequest struct {
	Channel  string `json:"channel" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Text     string `json:"text" validate:"required,max=500"`
	IsMod    bool   `json:"is_mod"`
}

// HandleMessage runs a chat message through the command router and
// returns the reply to post, if any.
// @Summary Handle chat message
// @Description Process a chat message for commands and point accrual
// @Tags message
// @Accept json
// @Produce json
// @Param request body HandleMessageRequest true "Message details"
// @Success 200 {object} ReplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /message/handle [post]
func HandleMessage(router *command.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HandleMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode request body", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		reply, err := router.Handle(r.Context(), command.Message{
			Channel:  req.Channel,
			Username: req.Username,
			Text:     req.Text,
			IsMod:    req.IsMod,
		})
		if err != nil {
			log.Error("Failed to handle message", "error", err, "username", req.Username)
			respondError(w, http.StatusInternalServerError, ErrMsgHandleMessageFailed)
			return
		}

		respondJSON(w, http.StatusOK, ReplyResponse{Reply: reply})
	}
}
