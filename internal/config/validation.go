package config

// validate checks that every setting the server cannot run without is
// present. Dataset paths are deliberately not validated here: a missing
// dataset is a recoverable load failure, not a bootstrap error.
func (c *Config) validate() error {
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Storage.DSN == "" {
		return ErrNoDSN
	}
	if c.Server.Address == "" {
		return ErrNoServerAddress
	}

	return nil
}
