package reminder

// Milestones worth congratulating. Both fire on exact equality only, so a
// milestone is announced once and never again.
var (
	streakMilestones = []int{7, 14, 30, 60, 100, 365}
	reviewMilestones = []int{10, 50, 100, 250, 500, 1000}
)

// StreakMilestone reports whether a learning streak just hit a milestone.
func StreakMilestone(streak int) (int, bool) {
	return matchMilestone(streak, streakMilestones)
}

// ReviewMilestone reports whether a total review count just hit a milestone.
func ReviewMilestone(total int) (int, bool) {
	return matchMilestone(total, reviewMilestones)
}

func matchMilestone(value int, milestones []int) (int, bool) {
	for _, milestone := range milestones {
		if value == milestone {
			return milestone, true
		}
	}
	return 0, false
}
