package fincore

import "fmt"

// Compounding defines how often interest compounds over a year.
//
// Continuous is a distinct formula path (e^(rt)), not a frequency: it has no
// period count and every dispatch over Compounding handles it explicitly.
type Compounding int

const (
	Annually Compounding = iota
	SemiAnnually
	Quarterly
	Monthly
	Weekly
	Daily
	Continuous
)

// PeriodsPerYear returns the number of compounding periods in a year, and
// false for Continuous which has none.
func (c Compounding) PeriodsPerYear() (int, bool) {
	switch c {
	case Annually:
		return 1, true
	case SemiAnnually:
		return 2, true
	case Quarterly:
		return 4, true
	case Monthly:
		return 12, true
	case Weekly:
		return 52, true
	case Daily:
		return 365, true
	case Continuous:
		return 0, false
	default:
		return 0, false
	}
}

func (c Compounding) String() string {
	switch c {
	case Annually:
		return "annually"
	case SemiAnnually:
		return "semi-annually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	case Daily:
		return "daily"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// ParseCompounding parses a string into a Compounding.
func ParseCompounding(s string) (Compounding, error) {
	switch s {
	case "annually":
		return Annually, nil
	case "semi-annually":
		return SemiAnnually, nil
	case "quarterly":
		return Quarterly, nil
	case "monthly":
		return Monthly, nil
	case "weekly":
		return Weekly, nil
	case "daily":
		return Daily, nil
	case "continuous":
		return Continuous, nil
	default:
		return 0, fmt.Errorf("unknown compounding frequency: %q", s)
	}
}
