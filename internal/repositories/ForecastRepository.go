package repositories

import (
	"context"
	"errors"
	"net/http"

	"precip-viewer/internal/models"
)

var (
	// ErrUnreachable covers transport failures: refused connections, DNS, resets, timeouts.
	ErrUnreachable = errors.New("forecast provider unreachable")
	// ErrBadStatus is returned for any non-2xx response.
	ErrBadStatus = errors.New("unexpected status code")
	// ErrMalformed is returned when a body does not decode into the expected shape.
	ErrMalformed = errors.New("malformed forecast payload")
	// ErrNoFixture is returned by FixtureRepository for a missing fixture section.
	ErrNoFixture = errors.New("fixture has no data")
)

// ForecastRepository is a source of today and week forecasts.
type ForecastRepository interface {
	Name() string
	FetchToday(ctx context.Context) (models.TodayForecast, error)
	FetchWeek(ctx context.Context) (models.WeekForecast, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Classify names the failure class of err for logs. It returns "" for a nil error.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	case errors.Is(err, ErrBadStatus):
		return "bad_status"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrNoFixture):
		return "no_fixture"
	default:
		return "unknown"
	}
}
