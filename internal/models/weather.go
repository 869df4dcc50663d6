package models

// WeatherEntry is the current-conditions snapshot for one game's
// venue. Temperature is °F, WindSpeed is mph, WindDirection is a
// compass string such as "NNE" or "SW".
type WeatherEntry struct {
	GameID        string  `json:"game_id"`
	Venue         string  `json:"venue"`
	Temperature   float64 `json:"temperature"`
	Condition     string  `json:"condition"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection string  `json:"wind_direction"`
	Humidity      int     `json:"humidity"`
	Fallback      bool    `json:"fallback,omitempty"`
}
