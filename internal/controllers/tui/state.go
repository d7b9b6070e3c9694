package tui

import "precip-viewer/internal/models"

const (
	TodayUnavailableMessage = "Unable to connect to weather service. Make sure the backend is running."
	WeekUnavailableMessage  = "Unable to fetch weekly forecast"
)

type errorKind int

const (
	errNone errorKind = iota
	errToday
	errWeek
)

// ViewState is owned by the Controller and only mutated from Update.
type ViewState struct {
	Today          *models.TodayForecast
	Week           models.WeekForecast
	IsLoadingToday bool
	// ErrorMessage is empty when no error is shown.
	ErrorMessage  string
	IsWeekVisible bool

	errKind errorKind
}

func initialState() ViewState {
	return ViewState{IsLoadingToday: true}
}

func (s ViewState) HasError() bool {
	return s.ErrorMessage != ""
}

func (s *ViewState) setError(kind errorKind, message string) {
	s.errKind = kind
	s.ErrorMessage = message
}

func (s *ViewState) clearError() {
	s.setError(errNone, "")
}

// clone deep-copies the pointer and slice fields so snapshots stay frozen.
func (s ViewState) clone() ViewState {
	out := s
	if s.Today != nil {
		today := *s.Today
		out.Today = &today
	}
	out.Week = s.Week.Clone()
	return out
}

type Phase string

const (
	PhaseInitializing Phase = "initializing"
	PhaseTodayReady   Phase = "today_ready"
	PhaseTodayFailed  Phase = "today_failed"
	PhaseWeekReady    Phase = "week_ready"
	PhaseWeekFailed   Phase = "week_failed"
)

// Phase names the macro-state s is in.
func (s ViewState) Phase() Phase {
	switch {
	case s.IsLoadingToday:
		return PhaseInitializing
	case s.errKind == errWeek:
		return PhaseWeekFailed
	case s.errKind == errToday:
		return PhaseTodayFailed
	case s.IsWeekVisible && len(s.Week) > 0:
		return PhaseWeekReady
	case s.Today != nil:
		return PhaseTodayReady
	default:
		return PhaseTodayFailed
	}
}
