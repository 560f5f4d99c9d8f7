package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required to start the server at all.
//
// Token signing configuration is deliberately not validated here: an
// incomplete signing configuration is an operator error surfaced at login
// time, not a startup failure.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Lockout.MaxFailures <= 0 || cfg.Lockout.Window <= 0 || cfg.Lockout.Duration <= 0 {
		return ErrInvalidLockoutConfigs
	}

	return nil
}
