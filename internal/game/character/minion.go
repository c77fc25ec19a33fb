package character

// Minion is a summoned creature. It carries no behavior beyond its stats.
type Minion struct {
	Stats
	// ID uniquely identifies this summoned instance.
	ID string
	// TemplateID names the template the minion was summoned from.
	TemplateID string
}

// NewMinion creates a minion at full health.
func NewMinion(id, templateID, name string, maxHP, damage, armor int) *Minion {
	return &Minion{
		Stats:      NewStats(name, maxHP, damage, armor),
		ID:         id,
		TemplateID: templateID,
	}
}

// String renders the minion's stats behind a "Minion: " label.
func (m *Minion) String() string {
	return "Minion: " + m.Stats.String()
}
