package config

import "github.com/alexflint/go-arg"

// Args holds CLI arguments parsed by go-arg. Set flags override the
// environment.
type Args struct {
	Env       string `arg:"--env" help:"dev uses the fixture backend and in-memory cache, prod the real ones"`
	Addr      string `arg:"--addr" help:"listen address, e.g. :8080"`
	Backend   string `arg:"--backend" help:"backend base URL"`
	NoRefresh bool   `arg:"--no-refresh" help:"skip the venue snapshot refresher"`
}

func (Args) Description() string {
	return "LapangIN web front: venue listing, detail, partner approval and profile pages."
}

// ParseArgs parses CLI arguments using go-arg.
func ParseArgs() *Args {
	var args Args
	arg.MustParse(&args)
	return &args
}

// Apply overrides cfg with the flags that were set.
func (a *Args) Apply(cfg *Config) {
	if a.Env != "" {
		cfg.Env = a.Env
	}
	if a.Addr != "" {
		cfg.ServerAddr = a.Addr
	}
	if a.Backend != "" {
		cfg.BackendBaseURL = a.Backend
	}
	if a.NoRefresh {
		cfg.SnapshotRefreshMinutes = 0
	}
}
