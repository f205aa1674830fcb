package calc

import "fmt"

type Efficacy int

const (
	Unknown Efficacy = iota
	Immune
	DoubleNotVeryEffective
	NotVeryEffective
	NormalEffective
	SuperEffective
	DoubleSuperEffective
)

func Classify(mult float64) Efficacy {
	switch {
	case mult < 0:
		return Unknown
	case mult == 0:
		return Immune
	case mult <= 0.25:
		return DoubleNotVeryEffective
	case mult < 1:
		return NotVeryEffective
	case mult == 1:
		return NormalEffective
	case mult < 4:
		return SuperEffective
	default:
		return DoubleSuperEffective
	}
}

func (e Efficacy) String() string {
	switch e {
	case Immune:
		return "no effect"
	case DoubleNotVeryEffective:
		return "mostly ineffective"
	case NotVeryEffective:
		return "not very effective"
	case NormalEffective:
		return "neutral"
	case SuperEffective:
		return "super effective"
	case DoubleSuperEffective:
		return "extremely effective"
	default:
		return "no data"
	}
}

// FormatMultiplier renders a multiplier the way the matrices show it: 0, ¼, ½, 1, 2, 4.
func FormatMultiplier(mult float64) string {
	switch {
	case mult < 0:
		return "-"
	case mult == 0:
		return "0"
	case mult == 0.25:
		return "¼"
	case mult == 0.5:
		return "½"
	case mult == float64(int(mult)):
		return fmt.Sprintf("%d", int(mult))
	default:
		return fmt.Sprintf("%g", mult)
	}
}
