package core

import "time"

// Config is the engine configuration. Key material and allow-lists are
// injected here at construction and never read ad hoc mid-evaluation.
type Config struct {
	FQDN            string              `yaml:"fqdn" json:"fqdn"`
	IssuerDID       string              `yaml:"issuerDid" json:"issuerDid"`
	PrivateKey      string              `yaml:"privatekey" json:"-"`
	TrustedAttester string              `yaml:"trustedAttester" json:"trustedAttester"`
	Admins          []string            `yaml:"admins" json:"admins"`
	Allowlists      map[string][]string `yaml:"allowlists" json:"-"`

	BearerNotBeforeSeconds    int64 `yaml:"bearerNotBeforeSeconds" json:"-"`
	BearerLifetimeSeconds     int64 `yaml:"bearerLifetimeSeconds" json:"-"`
	DelegationLifetimeSeconds int64 `yaml:"delegationLifetimeSeconds" json:"-"`
}

func (c Config) BearerNotBefore() time.Duration {
	if c.BearerNotBeforeSeconds == 0 {
		return time.Hour
	}
	return time.Duration(c.BearerNotBeforeSeconds) * time.Second
}

func (c Config) BearerLifetime() time.Duration {
	if c.BearerLifetimeSeconds == 0 {
		return 2 * time.Hour
	}
	return time.Duration(c.BearerLifetimeSeconds) * time.Second
}

func (c Config) DelegationLifetime() time.Duration {
	if c.DelegationLifetimeSeconds == 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.DelegationLifetimeSeconds) * time.Second
}
