// internal/workers/registry/cnpj-lookup/config.go
package cnpjlookup

import (
	"time"

	"cnpj-lookup/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

// LoadConfig derives the per-job timeout from the worker settings.
func LoadConfig(wcfg config.WorkerConfig) *Config {
	timeout := config.GetDuration(wcfg.Timeout)
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Config{Timeout: timeout}
}
