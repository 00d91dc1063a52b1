package score

// Achievement is a badge earned by reaching a milestone.
type Achievement struct {
	Icon string
	Name string
}

// Milestone thresholds for achievements.
const (
	HighAchieverScore  = 5000
	DiamondScore       = 10000
	VeteranLevel       = 5
	CollectorGoals     = 10
	CompletionistGoals = 5
)

// Achievements returns the badges earned for the given score state, number
// of goals and number of completed goals, in display order.
func Achievements(s State, goals, completed int) []Achievement {
	var out []Achievement
	if s.Score >= HighAchieverScore {
		out = append(out, Achievement{Icon: "🏆", Name: "High Achiever"})
	}
	if s.Score >= DiamondScore {
		out = append(out, Achievement{Icon: "💎", Name: "Diamond Status"})
	}
	if s.Level >= VeteranLevel {
		out = append(out, Achievement{Icon: "⭐", Name: "Veteran Player"})
	}
	if goals >= CollectorGoals {
		out = append(out, Achievement{Icon: "📋", Name: "Goal Collector"})
	}
	if completed >= CompletionistGoals {
		out = append(out, Achievement{Icon: "✅", Name: "Completionist"})
	}
	return out
}
