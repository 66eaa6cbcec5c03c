package service

const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
)

// ProficiencyLevel maps a score to an ordinal label. Boundaries are inclusive
// on the upper side: 85 is Advanced, 70 is Intermediate.
func ProficiencyLevel(score float64) string {
	switch {
	case score >= 85:
		return ProficiencyAdvanced
	case score >= 70:
		return ProficiencyIntermediate
	default:
		return ProficiencyBeginner
	}
}
