package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPassword == "") {
		return fmt.Errorf("auth.admin_email and auth.admin_password must be set together")
	}
	if c.Auth.AdminPassword != "" && len(c.Auth.AdminPassword) < 6 {
		return fmt.Errorf("auth.admin_password must be at least 6 characters")
	}

	if err := c.App.validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if c.Schedule.WindowDays <= 0 {
		return fmt.Errorf("schedule.window_days must be > 0 (got %d)", c.Schedule.WindowDays)
	}

	if c.Emergency.Retention <= 0 {
		return fmt.Errorf("emergency.retention must be > 0 (got %v)", c.Emergency.Retention)
	}

	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	if c.Finance.DueSoonDays < 0 {
		return fmt.Errorf("finance.due_soon_days must be >= 0 (got %d)", c.Finance.DueSoonDays)
	}

	if err := c.Assistant.validate(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}

	return nil
}

func (a *AppConfig) validate() error {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", a.Timezone, err)
	}
	a.Location = loc
	return nil
}

func (e *EventsConfig) validate() error {
	if e.MinLeadDays < 0 || e.MaxLeadDays < e.MinLeadDays {
		return fmt.Errorf("lead days must satisfy 0 <= min <= max (got %d..%d)", e.MinLeadDays, e.MaxLeadDays)
	}
	earliest, err := time.Parse("15:04", e.EarliestTime)
	if err != nil {
		return fmt.Errorf("earliest_time: %w", err)
	}
	latest, err := time.Parse("15:04", e.LatestTime)
	if err != nil {
		return fmt.Errorf("latest_time: %w", err)
	}
	if latest.Before(earliest) {
		return fmt.Errorf("latest_time %s is before earliest_time %s", e.LatestTime, e.EarliestTime)
	}
	return nil
}

func (a *AssistantConfig) validate() error {
	if _, err := url.ParseRequestURI(a.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", a.Temperature)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	return nil
}
