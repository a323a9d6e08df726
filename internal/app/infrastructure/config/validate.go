package config

import (
	"errors"
	"fmt"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.App.LogLevel)
	}
	if cfg.App.ListenAddr == "" {
		cfg.App.ListenAddr = ":8080"
	}

	// source
	if cfg.Source.Mode != ModeOpenF1 && cfg.Source.Mode != ModeLiveTiming {
		return fmt.Errorf("source.mode must be '%s' or '%s'", ModeOpenF1, ModeLiveTiming)
	}
	if cfg.Source.Mode == ModeOpenF1 && cfg.Source.OpenF1URL == "" {
		return errors.New("source.openf1_url is required")
	}
	if cfg.Source.Mode == ModeLiveTiming && cfg.Source.LiveTimingURL == "" {
		return errors.New("source.livetiming_url is required")
	}
	if cfg.Source.PollInterval <= 0 {
		return errors.New("source.poll_interval must be positive")
	}
	if cfg.Source.LivePollInterval <= 0 {
		return errors.New("source.live_poll_interval must be positive")
	}
	if cfg.Source.ReconnectDelay <= 0 {
		return errors.New("source.reconnect_delay must be positive")
	}
	if cfg.Source.InactivityTimeout <= 0 {
		return errors.New("source.inactivity_timeout must be positive")
	}

	// post
	if cfg.Post.ServiceURL == "" {
		return errors.New("post.service_url is required")
	}
	if cfg.Post.MaxChars <= 10 {
		return errors.New("post.max_chars must be greater than 10")
	}

	// emoji
	if cfg.Emoji.Categories == nil {
		cfg.Emoji.Categories = make(map[string]string)
	}
	if cfg.Emoji.Flags == nil {
		cfg.Emoji.Flags = make(map[string]string)
	}

	// seen
	if cfg.Seen.Capacity < 0 {
		return errors.New("seen.capacity must not be negative")
	}
	if cfg.Seen.TTL < 0 {
		return errors.New("seen.ttl must not be negative")
	}

	return nil
}
