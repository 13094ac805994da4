package openweather

import "time"

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultTimeout = 20 * time.Second

	// UnitsMetric reports temperatures in degrees Celsius.
	UnitsMetric = "metric"
)
