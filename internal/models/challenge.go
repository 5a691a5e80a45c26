package models

// ChallengePart is one catalog entry, e.g. title "Tiny Scripter" with
// description "50 lines maximum".
type ChallengePart struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LabelSeparator joins title and description in the stored document shape.
const LabelSeparator = " → "

// Label re-encodes the part as the single string the original participant
// documents carried.
func (p ChallengePart) Label() string {
	return p.Title + LabelSeparator + p.Description
}

// Challenge is one drawn combination: a core constraint, a line budget and a
// project domain.
type Challenge struct {
	Constraint ChallengePart `json:"constraint"`
	Budget     ChallengePart `json:"budget"`
	Domain     ChallengePart `json:"domain"`
}

// Combo flattens the challenge to the label strings persisted on acceptance.
func (c Challenge) Combo() AcceptedCombo {
	return AcceptedCombo{
		Constraint: c.Constraint.Label(),
		Budget:     c.Budget.Label(),
		Domain:     c.Domain.Label(),
	}
}
