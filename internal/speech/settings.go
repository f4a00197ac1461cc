package speech

// Speech defaults
const (
	DefaultRate   = 1.2
	DefaultPitch  = 1.0
	DefaultLocale = "en-IN"

	// rates below this are too slow to follow and are reset to DefaultRate
	minRate = 1.1
)

// Settings configures an Engine
type Settings struct {
	Rate          float64 `json:"rate"`
	Pitch         float64 `json:"pitch"`
	Voice         string  `json:"voice,omitempty"`
	Locale        string  `json:"locale"`
	PreferNatural bool    `json:"prefer_natural"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Rate:   DefaultRate,
		Pitch:  DefaultPitch,
		Locale: DefaultLocale,
	}
}

// Normalize resets out of range values to their defaults
func (s Settings) Normalize() Settings {
	if s.Rate < minRate {
		s.Rate = DefaultRate
	}
	if s.Pitch <= 0 {
		s.Pitch = DefaultPitch
	}
	if s.Locale == "" {
		s.Locale = DefaultLocale
	}
	return s
}
