package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/mailer"
	"github.com/sells-group/estate-cli/internal/registry"
	"github.com/sells-group/estate-cli/internal/store"
)

// initStore builds the case store selected by configuration.
func initStore() (store.Store, error) {
	switch cfg.Store.Driver {
	case "file", "":
		return store.NewFile(cfg.Store.Path), nil
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// initTransport returns the outbound mail transport, or nil when
// credentials are absent and operations should run in demo mode.
func initTransport() mailer.Transport {
	if !cfg.SMTP.Configured() {
		zap.L().Info("smtp not configured, running in demo mode")
		return nil
	}
	return mailer.NewSMTP(cfg.SMTP)
}

func initRegistry() (*registry.Registry, error) {
	return registry.New()
}

// printJSON writes a result to stdout for piping into jq or scripts.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
