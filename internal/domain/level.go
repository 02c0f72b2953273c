package domain

// Level - urgency or importance of a task
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// OrDefault returns medium for an unset level.
func (l Level) OrDefault() Level {
	if l == "" {
		return LevelMedium
	}
	return l
}
