package config

import "time"

type Config struct {
	App    App    `json:"app"`
	Source Source `json:"source"`
	Post   Post   `json:"post"`
	Emoji  Emoji  `json:"emoji"`
	Seen   Seen   `json:"seen"`
}

type App struct {
	LogLevel   string `json:"log_level"`
	GinMode    string `json:"gin_mode"`
	ListenAddr string `json:"listen_addr"`
	AuthToken  string `json:"auth_token"`
}

type Source struct {
	Mode              string        `json:"mode"`
	OpenF1URL         string        `json:"openf1_url"`
	PollInterval      time.Duration `json:"poll_interval"`
	LiveTimingURL     string        `json:"livetiming_url"`
	LivePollInterval  time.Duration `json:"live_poll_interval"`
	ReconnectDelay    time.Duration `json:"reconnect_delay"`
	InactivityTimeout time.Duration `json:"inactivity_timeout"`
}

type Post struct {
	ServiceURL string `json:"service_url"`
	Hashtags   string `json:"hashtags"`
	MaxChars   int    `json:"max_chars"`
}

// Emoji maps the category/flag vocabularies of both data sources onto
// decorations. The maps are plain config so a deployment can swap either
// vocabulary without a rebuild.
type Emoji struct {
	Categories      map[string]string `json:"categories"`
	Flags           map[string]string `json:"flags"`
	DefaultCategory string            `json:"default_category"`
}

// Seen bounds the in-memory seen-message store. Zero values mean unbounded,
// which matches a single race session; bounds matter only for very long
// uptimes.
type Seen struct {
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
}
