package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	pkgerrors "github.com/kevin07696/zift-gateway/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Secret manager backends
const (
	SecretManagerLocal = "local"
	SecretManagerAWS   = "aws"
	SecretManagerVault = "vault"
	SecretManagerGCP   = "gcp"
)

// Config holds all application configuration
type Config struct {
	Zift    ZiftConfig    `yaml:"zift"`
	Secrets SecretsConfig `yaml:"secrets"`
	Logger  LoggerConfig  `yaml:"logger"`
}

// ZiftConfig holds Zift gateway configuration
type ZiftConfig struct {
	UserName  string `yaml:"user_name"`
	Password  string `yaml:"password"`
	AccountID string `yaml:"account_id"`

	// CredentialsSecret names a secret holding {"userName","password","accountId"}.
	// Its fields replace the static ones above.
	CredentialsSecret string `yaml:"credentials_secret"`

	Environment    string            `yaml:"environment"`     // sandbox or production
	GatewayURL     string            `yaml:"gateway_url"`     // overrides the gate URL for the selected environment
	TimeoutSeconds int               `yaml:"timeout_seconds"` // HTTP client timeout (default: 30)
	ExtraFields    map[string]string `yaml:"extra_fields"`    // sent with every request
}

// SecretsConfig selects and configures the secret manager backend
type SecretsConfig struct {
	Manager         string `yaml:"manager"` // local, aws, vault, gcp
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`

	LocalPath string `yaml:"local_path"`

	AWSRegion   string `yaml:"aws_region"`
	AWSProfile  string `yaml:"aws_profile"`
	AWSEndpoint string `yaml:"aws_endpoint"`

	VaultAddress    string `yaml:"vault_address"`
	VaultAuthMethod string `yaml:"vault_auth_method"`
	VaultToken      string `yaml:"vault_token"`
	VaultRoleID     string `yaml:"vault_role_id"`
	VaultSecretID   string `yaml:"vault_secret_id"`
	VaultK8sRole    string `yaml:"vault_k8s_role"`
	VaultNamespace  string `yaml:"vault_namespace"`
	VaultMountPath  string `yaml:"vault_mount_path"`
	VaultKVVersion  string `yaml:"vault_kv_version"`

	GCPProjectID string `yaml:"gcp_project_id"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Zift: ZiftConfig{
			Environment:    "sandbox",
			TimeoutSeconds: 30,
		},
		Secrets: SecretsConfig{
			Manager:         SecretManagerLocal,
			CacheTTLMinutes: 5,
			LocalPath:       "./secrets",
			AWSRegion:       "us-east-1",
			VaultAuthMethod: "token",
			VaultMountPath:  "secret",
			VaultKVVersion:  "v2",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no paths, a missing
// ./.env is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file; environment variables
// take precedence over file values
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Zift.UserName = getEnv("ZIFT_USERNAME", c.Zift.UserName)
	c.Zift.Password = getEnv("ZIFT_PASSWORD", c.Zift.Password)
	c.Zift.AccountID = getEnv("ZIFT_ACCOUNT_ID", c.Zift.AccountID)
	c.Zift.CredentialsSecret = getEnv("ZIFT_CREDENTIALS_SECRET", c.Zift.CredentialsSecret)
	c.Zift.Environment = strings.ToLower(getEnv("ZIFT_ENVIRONMENT", c.Zift.Environment))
	c.Zift.TimeoutSeconds = getEnvAsInt("ZIFT_TIMEOUT", c.Zift.TimeoutSeconds)
	c.Zift.GatewayURL = getEnv("ZIFT_GATEWAY_URL", c.Zift.GatewayURL)

	c.Secrets.Manager = strings.ToLower(getEnv("SECRET_MANAGER", c.Secrets.Manager))
	c.Secrets.CacheTTLMinutes = getEnvAsInt("SECRET_CACHE_TTL_MINUTES", c.Secrets.CacheTTLMinutes)
	c.Secrets.LocalPath = getEnv("SECRET_LOCAL_PATH", c.Secrets.LocalPath)
	c.Secrets.AWSRegion = getEnv("SECRET_AWS_REGION", c.Secrets.AWSRegion)
	c.Secrets.AWSProfile = getEnv("SECRET_AWS_PROFILE", c.Secrets.AWSProfile)
	c.Secrets.AWSEndpoint = getEnv("SECRET_AWS_ENDPOINT", c.Secrets.AWSEndpoint)
	c.Secrets.VaultAddress = getEnv("SECRET_VAULT_ADDRESS", c.Secrets.VaultAddress)
	c.Secrets.VaultAuthMethod = getEnv("SECRET_VAULT_AUTH_METHOD", c.Secrets.VaultAuthMethod)
	c.Secrets.VaultToken = getEnv("SECRET_VAULT_TOKEN", c.Secrets.VaultToken)
	c.Secrets.VaultRoleID = getEnv("SECRET_VAULT_ROLE_ID", c.Secrets.VaultRoleID)
	c.Secrets.VaultSecretID = getEnv("SECRET_VAULT_SECRET_ID", c.Secrets.VaultSecretID)
	c.Secrets.VaultK8sRole = getEnv("SECRET_VAULT_K8S_ROLE", c.Secrets.VaultK8sRole)
	c.Secrets.VaultNamespace = getEnv("SECRET_VAULT_NAMESPACE", c.Secrets.VaultNamespace)
	c.Secrets.VaultMountPath = getEnv("SECRET_VAULT_MOUNT_PATH", c.Secrets.VaultMountPath)
	c.Secrets.VaultKVVersion = getEnv("SECRET_VAULT_KV_VERSION", c.Secrets.VaultKVVersion)
	c.Secrets.GCPProjectID = getEnv("SECRET_GCP_PROJECT_ID", c.Secrets.GCPProjectID)

	c.Logger.Level = getEnv("LOG_LEVEL", c.Logger.Level)
	c.Logger.Development = getEnvAsBool("LOG_DEVELOPMENT", c.Logger.Development)
}

// Validate checks required fields. Static credentials are only required
// when no credentials secret is configured.
func (c *Config) Validate() error {
	switch c.Zift.Environment {
	case "sandbox", "production":
	default:
		return pkgerrors.NewConfigurationError("ZIFT_ENVIRONMENT", fmt.Sprintf("must be sandbox or production, got %q", c.Zift.Environment))
	}

	if c.Zift.TimeoutSeconds <= 0 {
		return pkgerrors.NewConfigurationError("ZIFT_TIMEOUT", "must be a positive number of seconds")
	}

	if c.UsesSecretManager() {
		switch c.Secrets.Manager {
		case SecretManagerLocal, SecretManagerAWS, SecretManagerVault, SecretManagerGCP:
		default:
			return pkgerrors.NewConfigurationError("SECRET_MANAGER", fmt.Sprintf("unsupported secret manager %q", c.Secrets.Manager))
		}
		return nil
	}

	if strings.TrimSpace(c.Zift.UserName) == "" {
		return pkgerrors.NewConfigurationError("ZIFT_USERNAME", "is required")
	}
	if strings.TrimSpace(c.Zift.Password) == "" {
		return pkgerrors.NewConfigurationError("ZIFT_PASSWORD", "is required")
	}
	if strings.TrimSpace(c.Zift.AccountID) == "" {
		return pkgerrors.NewConfigurationError("ZIFT_ACCOUNT_ID", "is required")
	}
	return nil
}

// UsesSecretManager reports whether credentials come from a secret manager
func (c *Config) UsesSecretManager() bool {
	return strings.TrimSpace(c.Zift.CredentialsSecret) != ""
}

// Timeout returns the HTTP client timeout
func (c *ZiftConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the secret cache TTL
func (c *SecretsConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
