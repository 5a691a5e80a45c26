package handlers

import (
	"errors"
	"net/http"

	"github.com/delbyte/codeolympics/internal/services"

	"github.com/gin-gonic/gin"
)

type PlayHandler struct {
	playService *services.PlayService
}

func NewPlayHandler(playService *services.PlayService) *PlayHandler {
	return &PlayHandler{playService: playService}
}

type PlayTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// GetState godoc
// @Summary      Get play session state
// @Tags         play
// @Produce      json
// @Param        token query string true "Session token"
// @Success      200 {object} services.PlayState
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/state [get]
func (h *PlayHandler) GetState(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "token required"})
		return
	}

	state, err := h.playService.Get(token)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// Draw godoc
// @Summary      Draw (or redraw) a challenge
// @Description  Starts the 3 second draw; the reveal arrives over the session WebSocket
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayTokenRequest true "Session token"
// @Success      200 {object} services.PlayState
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/draw [post]
func (h *PlayHandler) Draw(c *gin.Context) {
	var req PlayTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.playService.Draw(req.Token)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// Accept godoc
// @Summary      Accept the shown challenge
// @Description  Persists the combo and starts the 5 second redirect countdown
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayTokenRequest true "Session token"
// @Success      200 {object} services.PlayState
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/accept [post]
func (h *PlayHandler) Accept(c *gin.Context) {
	var req PlayTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.playService.Accept(req.Token)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// ChallengeEntry godoc
// @Summary      Enter the challenge view by URL
// @Description  Resumes (or opens) a session for the email; redirects home when the email is missing
// @Tags         play
// @Produce      json
// @Param        email query string false "Participant email"
// @Param        username query string false "Discord username"
// @Success      200 {object} services.PlayState
// @Failure      302 "redirect to the entry view"
// @Router       /challenge [get]
func (h *PlayHandler) ChallengeEntry(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	state, err := h.playService.Resume(email, c.Query("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, state)
}
