package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"precip-viewer/internal/models"
)

type Style struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Loading  lipgloss.Style
	Banner   lipgloss.Style
	Card     lipgloss.Style
	Action   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Rows     map[models.Condition]lipgloss.Style
}

type ConditionColors struct {
	Clear string
	Rain  string
	Snow  string
}

func DefaultStyles() *Style {
	lightModeColors := ConditionColors{
		Clear: "#CA8A04", // yellow
		Rain:  "#2563EB", // blue
		Snow:  "#0891B2", // cyan
	}

	darkModeColors := ConditionColors{
		Clear: "#FDE047",
		Rain:  "#93C5FD",
		Snow:  "#67E8F9",
	}

	row := func(light, dark string) lipgloss.Style {
		return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.AdaptiveColor{Light: light, Dark: dark})
	}

	return &Style{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Loading:  lipgloss.NewStyle().Italic(true),
		Banner: lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#DC2626")),
		Card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Action: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"}),
		Muted:  lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Rows: map[models.Condition]lipgloss.Style{
			models.ConditionClear: row(lightModeColors.Clear, darkModeColors.Clear),
			models.ConditionRain:  row(lightModeColors.Rain, darkModeColors.Rain),
			models.ConditionSnow:  row(lightModeColors.Snow, darkModeColors.Snow),
		},
	}
}

var icons = map[models.Condition]string{
	models.ConditionClear: "☀️",
	models.ConditionRain:  "🌧️",
	models.ConditionSnow:  "❄️",
}

func (s *Style) Render(title string, screen Screen, keyMap KeyMap) string {
	parts := []string{
		s.Title.Render(title + " Weather"),
		s.Subtitle.Render("Rain Prediction System"),
		"",
	}

	if screen.Loading {
		parts = append(parts, s.Loading.Render("Loading weather data..."), "")
	}
	if screen.Banner != "" {
		parts = append(parts, s.Banner.Render(screen.Banner), "")
	}
	if screen.Today != nil {
		parts = append(parts, s.renderToday(screen.Today, screen.WeekAction), "")
	}
	if len(screen.Week) > 0 {
		parts = append(parts, s.renderWeek(screen.Week), "")
	}

	parts = append(parts, s.Help.Render(helpLine(keyMap)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *Style) renderToday(card *TodayCard, action string) string {
	lines := []string{
		s.Title.Render("Today - " + card.Day),
		s.Muted.Render(card.Date),
		"",
		icons[card.Condition] + "  " + s.Title.Render(card.Headline),
		s.Muted.Render(card.Detail),
		"",
		"Temperature " + card.Temperature + "   Humidity " + card.Humidity + "   Cloud Cover " + card.CloudCover,
	}
	if card.Message != "" {
		lines = append(lines, s.Muted.Render(card.Message))
	}
	lines = append(lines, "", s.Action.Render("[w] "+action))

	return s.Card.Render(strings.Join(lines, "\n"))
}

func (s *Style) renderWeek(rows []WeekRow) string {
	rendered := []string{s.Title.Render("Weekly Forecast")}
	for _, r := range rows {
		line := strings.Join([]string{
			r.Day + " " + s.Muted.Render(r.Date),
			icons[r.Condition] + " " + r.Label + " · " + r.Precipitation,
			s.Muted.Render(r.Conditions),
		}, "\n")
		rendered = append(rendered, s.Rows[r.Condition].Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func helpLine(keyMap KeyMap) string {
	var parts []string
	for _, b := range []key.Binding{keyMap.ShowWeek, keyMap.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
