package config

import "time"

const (
	ModeOpenF1     = "openf1"
	ModeLiveTiming = "livetiming"
)

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel:   "info",
			GinMode:    "release",
			ListenAddr: ":8080",
		},
		Source: Source{
			Mode:              ModeOpenF1,
			OpenF1URL:         "https://api.openf1.org/v1/race_control",
			PollInterval:      5 * time.Second,
			LiveTimingURL:     "https://livetiming.formula1.com/signalr",
			LivePollInterval:  time.Second,
			ReconnectDelay:    5 * time.Second,
			InactivityTimeout: 5 * time.Minute,
		},
		Post: Post{
			ServiceURL: "https://bsky.social",
			Hashtags:   "#f1 #formula1 #FormulaOne",
			MaxChars:   300,
		},
		Emoji: Emoji{
			Categories: map[string]string{
				// live timing vocabulary
				"Other":     "ℹ️",
				"Flag":      "🚩",
				"Drs":       "📡",
				"SafetyCar": "🚨",
				"Incident":  "💥",
				"Track":     "🛣️",
				"Weather":   "🌦️",
				"Technical": "🔧",
				"Timing":    "⏱️",
				"Stewards":  "👨‍⚖️",
				// openf1 vocabulary
				"RACE_CONTROL": "📊",
				"FLAG":         "🚩",
				"DRS":          "💨",
				"SAFETY_CAR":   "🚨",
				"TRACK":        "🛣️",
				"SECTOR":       "📍",
				"TRACK_STATUS": "🏁",
				"WARNING":      "⚠️",
				"DRIVER":       "🏎️",
				"CAR":          "🏎️",
			},
			Flags: map[string]string{
				"GREEN":            "🟢",
				"RED":              "🔴",
				"YELLOW":           "🟡",
				"DOUBLE_YELLOW":    "🟡🟡",
				"BLUE":             "🔵",
				"CHEQUERED":        "🏁",
				"BLACK":            "⚫",
				"BLACK_AND_ORANGE": "⚫🟧",
				"BLACK_AND_WHITE":  "⚫⚪",
				"WHITE":            "⚪",
				"CLEAR":            "⚪",
			},
			DefaultCategory: "ℹ️",
		},
		Seen: Seen{},
	}
}
