package repositories

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"precip-viewer/internal/models"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the on-disk shape of a fixture file. Either section may be omitted.
type Fixture struct {
	Location string                `yaml:"location"`
	Today    *models.TodayForecast `yaml:"today"`
	Week     models.WeekForecast   `yaml:"week"`
}

// FixtureRepository serves canned forecasts. It backs the stub provider.
type FixtureRepository struct {
	fixture Fixture
}

// NewFixtureRepository loads the fixture at path, or the embedded default when path is empty.
func NewFixtureRepository(path string) (*FixtureRepository, error) {
	data := defaultFixture
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read fixture: %w", err)
		}
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %q: %w", path, err)
	}

	if fixture.Today != nil {
		if err := fixture.Today.Validate(); err != nil {
			return nil, fmt.Errorf("invalid today fixture: %w", err)
		}
	}
	if fixture.Week != nil {
		if err := (models.WeekResponse{Predictions: fixture.Week}).Validate(); err != nil {
			return nil, fmt.Errorf("invalid week fixture: %w", err)
		}
	}

	return &FixtureRepository{fixture: fixture}, nil
}

func (f *FixtureRepository) Name() string {
	return "fixture"
}

func (f *FixtureRepository) Location() string {
	return f.fixture.Location
}

func (f *FixtureRepository) FetchToday(ctx context.Context) (models.TodayForecast, error) {
	if err := ctx.Err(); err != nil {
		return models.TodayForecast{}, err
	}
	if f.fixture.Today == nil {
		return models.TodayForecast{}, fmt.Errorf("%w: today", ErrNoFixture)
	}

	return *f.fixture.Today, nil
}

func (f *FixtureRepository) FetchWeek(ctx context.Context) (models.WeekForecast, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.fixture.Week == nil {
		return nil, fmt.Errorf("%w: week", ErrNoFixture)
	}

	return f.fixture.Week.Clone(), nil
}
