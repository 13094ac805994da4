package model

// Weather is a current-conditions reading for one location.
type Weather struct {
	City       string
	Country    string
	TempC      float64
	FeelsLikeC float64
	Humidity   int
	Condition  string // human readable, e.g. "scattered clouds"
}
