package zift

import (
	"strings"

	pkgerrors "github.com/kevin07696/zift-gateway/pkg/errors"
)

const (
	// TestURL is the sandbox xurl gate. The trailing "?" is part of the fixed path.
	TestURL = "https://sandbox-secure.ziftpay.com/gates/xurl?"
	// LiveURL is the production xurl gate
	LiveURL = "https://secure.ziftpay.com/gates/xurl?"
)

// Credentials are the merchant's static API credentials, sent with every request
type Credentials struct {
	UserName  string `json:"userName" yaml:"user_name"`
	Password  string `json:"password" yaml:"password"`
	AccountID string `json:"accountId" yaml:"account_id"`
}

// Validate reports the first missing credential as a ConfigurationError
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.UserName) == "" {
		return pkgerrors.NewConfigurationError(fieldUserName, "is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return pkgerrors.NewConfigurationError(fieldPassword, "is required")
	}
	if strings.TrimSpace(c.AccountID) == "" {
		return pkgerrors.NewConfigurationError(fieldAccountID, "is required")
	}
	return nil
}

// Config contains configuration for the Zift gateway adapter
type Config struct {
	Credentials Credentials

	// Test selects the sandbox gate and marks every result as a test result
	Test bool

	// Gate URLs; overridable for local testing
	TestURL string
	LiveURL string

	// ExtraFields are passed through on every request. They are merged after
	// operation fields and before credentials, so they cannot replace either
	// userName, password, accountId or requestType.
	ExtraFields map[string]string
}

// DefaultConfig returns the configuration for the given environment.
// Anything other than "production" selects the sandbox gate.
func DefaultConfig(environment string, credentials Credentials) *Config {
	return &Config{
		Credentials: credentials,
		Test:        environment != "production",
		TestURL:     TestURL,
		LiveURL:     LiveURL,
	}
}

// Endpoint returns the gate URL for the configured mode
func (c *Config) Endpoint() string {
	if c.Test {
		if c.TestURL != "" {
			return c.TestURL
		}
		return TestURL
	}
	if c.LiveURL != "" {
		return c.LiveURL
	}
	return LiveURL
}
