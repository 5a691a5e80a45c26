package handlers

import (
	"net/http"
	"time"

	"github.com/delbyte/codeolympics/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ParticipantSummary is a signup row for organizers, with the accepted
// combo unpacked from its stored columns.
type ParticipantSummary struct {
	ID              uint                  `json:"id"`
	Email           string                `json:"email"`
	DiscordUsername string                `json:"discord_username"`
	PlayCount       int                   `json:"play_count"`
	HasPlayed       bool                  `json:"has_played"`
	AcceptedCombo   *models.AcceptedCombo `json:"accepted_combo,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func newParticipantSummary(p models.Participant) ParticipantSummary {
	return ParticipantSummary{
		ID:              p.ID,
		Email:           p.Email,
		DiscordUsername: p.DiscordUsername,
		PlayCount:       p.PlayCount,
		HasPlayed:       p.HasPlayed,
		AcceptedCombo:   p.Accepted(),
		CreatedAt:       p.CreatedAt,
	}
}

type PlayCountBucket struct {
	PlayCount    int   `json:"play_count"`
	Participants int64 `json:"participants"`
}

type StatsResponse struct {
	TotalParticipants int64             `json:"total_participants"`
	AcceptedCount     int64             `json:"accepted_count"`
	PlayCounts        []PlayCountBucket `json:"play_counts"`
}

// ListParticipants godoc
// @Summary      List signups
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ParticipantSummary
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/participants [get]
func (h *AdminHandler) ListParticipants(c *gin.Context) {
	var participants []models.Participant
	if err := h.db.Order("created_at DESC").Find(&participants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load participants"})
		return
	}

	summaries := make([]ParticipantSummary, 0, len(participants))
	for _, p := range participants {
		summaries = append(summaries, newParticipantSummary(p))
	}
	c.JSON(http.StatusOK, summaries)
}

// GetStats godoc
// @Summary      Signup and play statistics
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} StatsResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	var stats StatsResponse

	if err := h.db.Model(&models.Participant{}).Count(&stats.TotalParticipants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load stats"})
		return
	}
	h.db.Model(&models.Participant{}).Where("has_played = ?", true).Count(&stats.AcceptedCount)
	h.db.Model(&models.Participant{}).
		Select("play_count, count(*) as participants").
		Group("play_count").
		Order("play_count ASC").
		Scan(&stats.PlayCounts)

	c.JSON(http.StatusOK, stats)
}
