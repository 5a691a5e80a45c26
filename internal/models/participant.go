package models

import "time"

// Participant is the per-email record behind the "one playthrough per email"
// rule. The accepted-combo columns keep the "Title → Description" label
// strings the original site stored, so exports stay compatible with the old
// documents.
type Participant struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	DiscordUsername    string    `gorm:"size:100;not null" json:"discord_username"`
	PlayCount          int       `gorm:"not null;default:0" json:"play_count"`
	HasPlayed          bool      `gorm:"not null;default:false" json:"has_played"`
	AcceptedConstraint string    `gorm:"size:255" json:"-"`
	AcceptedBudget     string    `gorm:"size:255" json:"-"`
	AcceptedDomain     string    `gorm:"size:255" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
}

// AcceptedCombo is the challenge triple persisted on acceptance.
type AcceptedCombo struct {
	Constraint string `json:"constraint"`
	Budget     string `json:"budget"`
	Domain     string `json:"domain"`
}

// Accepted returns the stored combo, or nil if the participant never accepted.
func (p *Participant) Accepted() *AcceptedCombo {
	if p.AcceptedConstraint == "" && p.AcceptedBudget == "" && p.AcceptedDomain == "" {
		return nil
	}
	return &AcceptedCombo{
		Constraint: p.AcceptedConstraint,
		Budget:     p.AcceptedBudget,
		Domain:     p.AcceptedDomain,
	}
}
