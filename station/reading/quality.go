package reading

import "fmt"

type Quality int

const (
	Great Quality = iota
	Good
	Bad
)

func (q Quality) String() string {
	switch q {
	case Great:
		return "Great"
	case Good:
		return "Good"
	case Bad:
		return "Bad"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// Thresholds split the air sensor ratio into quality bands: below Great is Great, below Good is Good,
// anything else is Bad.
type Thresholds struct {
	Great float64 `yaml:"great"`
	Good  float64 `yaml:"good"`
}

var DefaultThresholds = Thresholds{Great: 1.2, Good: 1.5}

func (t Thresholds) Classify(ratio float64) Quality {
	switch {
	case ratio < t.Great:
		return Great
	case ratio < t.Good:
		return Good
	default:
		return Bad
	}
}
