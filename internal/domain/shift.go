package domain

// Shift is a recurring weekly working interval on a single day of the
// week. DayOfWeek follows Sunday=0..Saturday=6. A shift never crosses
// midnight: EndHour > StartHour is required, and EndHour may be 24 to
// mean "through midnight" without spilling into the next day's index.
type Shift struct {
	DayOfWeek int `json:"dayOfWeek" yaml:"day_of_week"`
	StartHour int `json:"startHour" yaml:"start_hour"`
	EndHour   int `json:"endHour" yaml:"end_hour"`
}
