package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/delbyte/codeolympics/internal/models"
	"github.com/delbyte/codeolympics/internal/services"
	"github.com/delbyte/codeolympics/internal/store"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participantService *services.ParticipantService
	playService        *services.PlayService
}

func NewParticipantHandler(participantService *services.ParticipantService, playService *services.PlayService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService, playService: playService}
}

type JoinRequest struct {
	Email           string `json:"email" binding:"required,email" example:"gopher@example.com"`
	DiscordUsername string `json:"discord_username" binding:"required,min=1,max=100" example:"gopher"`
}

type JoinResponse struct {
	Token   string              `json:"token"`
	Session *services.PlayState `json:"session"`
}

type AlreadyPlayedResponse struct {
	Error         string                `json:"error"`
	AcceptedCombo *models.AcceptedCombo `json:"accepted_combo,omitempty"`
}

// Join godoc
// @Summary      Join the challenge
// @Description  Register an email and Discord username; each email plays once
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Signup data"
// @Success      200 {object} JoinResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} AlreadyPlayedResponse
// @Failure      500 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/participants [post]
func (h *ParticipantHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, created, err := h.participantService.Register(req.Email, req.DiscordUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "participant store is not configured, please check the environment variables"})
			return
		}
		log.Printf("participants: register %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "something went wrong, please try again"})
		return
	}

	if !created {
		c.JSON(http.StatusConflict, AlreadyPlayedResponse{
			Error:         "you've already played the game, each email can only play once",
			AcceptedCombo: participant.Accepted(),
		})
		return
	}

	session, err := h.playService.Open(req.Email, req.DiscordUsername)
	if err != nil {
		log.Printf("participants: open session for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, JoinResponse{Token: session.Token, Session: session})
}
