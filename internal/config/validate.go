package config

import (
	"fmt"
	"strings"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !oneOf(c.Log.Level, validLevels) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(validLevels, ", "), c.Log.Level)
	}
	if !oneOf(c.Log.Format, validFormats) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(validFormats, ", "), c.Log.Format)
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	if l.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", l.DefaultPageSize)
	}
	if l.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be > 0 (got %d)", l.MaxBatchSize)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
