package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/delbyte/codeolympics/internal/models"
)

func TestParticipantSummaryCarriesAcceptedCombo(t *testing.T) {
	p := models.Participant{
		ID:                 7,
		Email:              "gopher@example.com",
		DiscordUsername:    "gopher",
		PlayCount:          2,
		HasPlayed:          true,
		AcceptedConstraint: "No If Statements → Replace all conditionals with other constructs",
		AcceptedBudget:     "100 Lines → Entire project in 100 lines",
		AcceptedDomain:     "Game → Build a playable game",
	}

	s := newParticipantSummary(p)
	if s.AcceptedCombo == nil {
		t.Fatal("expected accepted combo on an accepted participant")
	}
	if s.AcceptedCombo.Budget != p.AcceptedBudget {
		t.Fatalf("expected budget %q, got %q", p.AcceptedBudget, s.AcceptedCombo.Budget)
	}

	body, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal summary: %v", err)
	}
	if !strings.Contains(string(body), `"accepted_combo"`) {
		t.Fatalf("expected accepted_combo in response body, got %s", body)
	}
}

func TestParticipantSummaryWithoutAcceptance(t *testing.T) {
	s := newParticipantSummary(models.Participant{Email: "fresh@example.com"})
	if s.AcceptedCombo != nil {
		t.Fatalf("expected no combo for an unaccepted participant, got %+v", s.AcceptedCombo)
	}
}
