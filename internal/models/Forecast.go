package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// WeekLength is the number of entries in a week forecast, Monday through Friday.
const WeekLength = 5

// DailyForecast is one day's prediction. Date is an opaque display label.
type DailyForecast struct {
	Day             string  `json:"day" yaml:"day" validate:"required" example:"Monday"`
	Date            string  `json:"date" yaml:"date" example:"2026-01-12"`
	WillRain        bool    `json:"will_rain" yaml:"will_rain"`
	RainProbability float64 `json:"rain_probability" yaml:"rain_probability" validate:"gte=0,lte=1" example:"0.1"`
	WillSnow        bool    `json:"will_snow" yaml:"will_snow"`
	SnowProbability float64 `json:"snow_probability" yaml:"snow_probability" validate:"gte=0,lte=1" example:"0"`
	Temperature     float64 `json:"temperature" yaml:"temperature" example:"5.2"`
	Humidity        float64 `json:"humidity" yaml:"humidity" validate:"gte=0,lte=100" example:"76"`
	CloudCover      float64 `json:"cloud_cover" yaml:"cloud_cover" validate:"gte=0,lte=100" example:"60"`
}

type TodayForecast struct {
	DailyForecast `yaml:",inline"`
	Message       string `json:"message" yaml:"message" example:"No rain or snow expected today"`
}

// WeekForecast keeps the provider's order; it is never re-sorted.
type WeekForecast []DailyForecast

// WeekResponse is the wire shape of the week endpoint.
type WeekResponse struct {
	Predictions WeekForecast `json:"predictions" validate:"len=5,dive"`
	Location    string       `json:"location,omitempty" example:"Pristina, Kosovo"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func (d DailyForecast) Validate() error {
	return validatorInstance().Struct(d)
}

func (t TodayForecast) Validate() error {
	return validatorInstance().Struct(t)
}

func (w WeekResponse) Validate() error {
	return validatorInstance().Struct(w)
}

// Clone returns a copy that shares no backing array with w.
func (w WeekForecast) Clone() WeekForecast {
	if w == nil {
		return nil
	}
	out := make(WeekForecast, len(w))
	copy(out, w)
	return out
}
