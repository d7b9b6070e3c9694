package models

// Condition is what a forecast card displays.
type Condition string

const (
	ConditionClear Condition = "clear"
	ConditionRain  Condition = "rain"
	ConditionSnow  Condition = "snow"
)

// Condition resolves the displayed condition: snow wins over rain, rain over clear.
// The numeric probabilities play no part.
func (d DailyForecast) Condition() Condition {
	switch {
	case d.WillSnow:
		return ConditionSnow
	case d.WillRain:
		return ConditionRain
	default:
		return ConditionClear
	}
}

// ConditionProbability is the probability shown alongside Condition, 0 for clear.
func (d DailyForecast) ConditionProbability() float64 {
	switch d.Condition() {
	case ConditionSnow:
		return d.SnowProbability
	case ConditionRain:
		return d.RainProbability
	default:
		return 0
	}
}
