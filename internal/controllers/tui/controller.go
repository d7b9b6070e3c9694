package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"precip-viewer/internal/models"
	"precip-viewer/internal/repositories"
	"precip-viewer/pkg/observe"
)

type todayLoadedMsg struct {
	id       string
	forecast models.TodayForecast
	err      error
}

type weekLoadedMsg struct {
	id   string
	seq  uint64
	week models.WeekForecast
	err  error
}

// Controller is the forecast view state machine. Fetches run inside tea.Cmds; their
// settlements come back as messages and are applied in Update, so ViewState has a single
// writer and needs no lock.
//
// A new LoadWeek cancels the previous in-flight week request. Settlements of superseded
// requests are dropped, so the most recently issued LoadWeek decides the week state.
type Controller struct {
	ctx    context.Context
	repo   repositories.ForecastRepository
	l      *observe.Logger
	title  string
	keyMap KeyMap
	style  *Style

	state ViewState

	todayIssued bool
	weekSeq     uint64
	cancelWeek  context.CancelFunc
}

func NewController(ctx context.Context, repo repositories.ForecastRepository, l *observe.Logger, title string) *Controller {
	return &Controller{
		ctx:    ctx,
		repo:   repo,
		l:      l,
		title:  title,
		keyMap: DefaultKeyMap,
		style:  DefaultStyles(),
		state:  initialState(),
	}
}

// State returns a snapshot of the current view state.
func (c *Controller) State() ViewState {
	return c.state.clone()
}

func (c *Controller) Init() tea.Cmd {
	return c.LoadToday()
}

// LoadToday issues the today request. Only the first call does anything.
func (c *Controller) LoadToday() tea.Cmd {
	if c.todayIssued {
		return nil
	}
	c.todayIssued = true

	ctx, repo := c.ctx, c.repo
	id := uuid.NewString()
	c.l.Info("loading today forecast", map[string]any{"fetch_id": id, "repository": repo.Name()})

	return func() tea.Msg {
		forecast, err := repo.FetchToday(ctx)
		return todayLoadedMsg{id: id, forecast: forecast, err: err}
	}
}

// LoadWeek issues a week request, cancelling any that is still in flight.
func (c *Controller) LoadWeek() tea.Cmd {
	if c.cancelWeek != nil {
		c.cancelWeek()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelWeek = cancel
	c.weekSeq++

	seq, repo := c.weekSeq, c.repo
	id := uuid.NewString()
	c.l.Info("loading week forecast", map[string]any{"fetch_id": id, "seq": seq, "repository": repo.Name()})

	return func() tea.Msg {
		week, err := repo.FetchWeek(ctx)
		return weekLoadedMsg{id: id, seq: seq, week: week, err: err}
	}
}

func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todayLoadedMsg:
		c.applyToday(msg)

	case weekLoadedMsg:
		c.applyWeek(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keyMap.Quit):
			c.Close()
			return c, tea.Quit
		case key.Matches(msg, c.keyMap.ShowWeek):
			return c, c.LoadWeek()
		}
	}

	return c, nil
}

func (c *Controller) applyToday(msg todayLoadedMsg) {
	c.state.IsLoadingToday = false

	if msg.err != nil {
		c.l.Warning("today forecast unavailable", map[string]any{
			"fetch_id": msg.id,
			"cause":    repositories.Classify(msg.err),
			"err":      msg.err,
		})
		c.state.Today = nil
		c.state.setError(errToday, TodayUnavailableMessage)
		return
	}

	forecast := msg.forecast
	c.state.Today = &forecast
	c.state.clearError()
	c.l.Info("today forecast loaded", map[string]any{"fetch_id": msg.id, "day": forecast.Day})
}

func (c *Controller) applyWeek(msg weekLoadedMsg) {
	if msg.seq != c.weekSeq {
		c.l.Debug("dropping superseded week forecast", map[string]any{
			"fetch_id": msg.id,
			"seq":      msg.seq,
			"current":  c.weekSeq,
		})
		return
	}
	if c.cancelWeek != nil {
		c.cancelWeek()
		c.cancelWeek = nil
	}
	if errors.Is(msg.err, context.Canceled) {
		c.l.Debug("week forecast canceled", map[string]any{"fetch_id": msg.id, "seq": msg.seq})
		return
	}

	err := msg.err
	if err == nil && len(msg.week) != models.WeekLength {
		err = repositories.ErrMalformed
	}
	if err != nil {
		c.l.Warning("week forecast unavailable", map[string]any{
			"fetch_id": msg.id,
			"cause":    repositories.Classify(err),
			"err":      err,
		})
		c.state.setError(errWeek, WeekUnavailableMessage)
		return
	}

	c.state.Week = msg.week.Clone()
	c.state.IsWeekVisible = true
	c.state.clearError()
	c.l.Info("week forecast loaded", map[string]any{"fetch_id": msg.id, "days": len(msg.week)})
}

// Settle runs cmd on the calling goroutine and applies its settlement. It is the headless
// counterpart of the tea.Program loop.
func (c *Controller) Settle(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := c.Update(cmd())
	return next
}

// Close cancels an in-flight week request, if any.
func (c *Controller) Close() {
	if c.cancelWeek != nil {
		c.cancelWeek()
		c.cancelWeek = nil
	}
}

func (c *Controller) View() string {
	return c.style.Render(c.title, Project(c.state), c.keyMap)
}
