package tui

import (
	"fmt"
	"strconv"

	"precip-viewer/internal/models"
)

// Screen is everything the renderer needs. Project builds it from ViewState alone.
type Screen struct {
	Loading bool
	Banner  string
	// Today is nil while loading or when no today forecast is held.
	Today *TodayCard
	// WeekAction labels the week trigger; empty when Today is nil.
	WeekAction string
	// Week is empty until the week panel is visible.
	Week []WeekRow
}

type TodayCard struct {
	Day         string
	Date        string
	Condition   models.Condition
	Headline    string
	Detail      string
	Temperature string
	Humidity    string
	CloudCover  string
	Message     string
}

type WeekRow struct {
	Day           string
	Date          string
	Condition     models.Condition
	Label         string
	Precipitation string
	Conditions    string
}

func Project(s ViewState) Screen {
	screen := Screen{
		Loading: s.IsLoadingToday,
		Banner:  s.ErrorMessage,
	}

	if s.Today != nil && !s.IsLoadingToday {
		screen.Today = projectToday(*s.Today)
		screen.WeekAction = "Show 5-Day Forecast (Mon-Fri)"
		if s.IsWeekVisible {
			screen.WeekAction = "Refresh 5-Day Forecast (Mon-Fri)"
		}
	}

	if s.IsWeekVisible && len(s.Week) > 0 {
		screen.Week = make([]WeekRow, 0, len(s.Week))
		for _, d := range s.Week {
			screen.Week = append(screen.Week, projectWeekRow(d))
		}
	}

	return screen
}

func projectToday(t models.TodayForecast) *TodayCard {
	card := &TodayCard{
		Day:         t.Day,
		Date:        t.Date,
		Condition:   t.Condition(),
		Temperature: formatNumber(t.Temperature) + "°C",
		Humidity:    formatNumber(t.Humidity) + "%",
		CloudCover:  formatNumber(t.CloudCover) + "%",
		Message:     t.Message,
	}

	switch card.Condition {
	case models.ConditionSnow:
		card.Headline = "Snow Expected"
	case models.ConditionRain:
		card.Headline = "Rain Expected"
	default:
		card.Headline = "No Rain or Snow"
		card.Detail = "Clear weather expected"
		return card
	}
	card.Detail = formatPercent(t.ConditionProbability()) + " chance"

	return card
}

func projectWeekRow(d models.DailyForecast) WeekRow {
	row := WeekRow{
		Day:        d.Day,
		Date:       d.Date,
		Condition:  d.Condition(),
		Conditions: fmt.Sprintf("%s°C | %s%% humidity", formatNumber(d.Temperature), formatNumber(d.Humidity)),
	}

	switch row.Condition {
	case models.ConditionSnow:
		row.Label = "Snow"
	case models.ConditionRain:
		row.Label = "Rain"
	default:
		row.Label = "Clear"
		row.Precipitation = "No precipitation"
		return row
	}
	row.Precipitation = formatPercent(d.ConditionProbability()) + " " + string(row.Condition)

	return row
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
