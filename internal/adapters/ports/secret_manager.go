package ports

import (
	"context"
)

// Secret represents a retrieved secret with metadata
type Secret struct {
	Value     string            // The secret value (e.g., Zift credentials JSON)
	Version   string            // Secret version identifier
	Metadata  map[string]string // Additional secret metadata
	CreatedAt string            // When this version was created
}

// SecretManagerAdapter defines the port for retrieving secrets from a secret management service.
// Supports multiple backends: local files, AWS Secrets Manager, GCP Secret Manager, HashiCorp Vault.
// Implementations own authentication with the backend and caching (with TTL).
type SecretManagerAdapter interface {
	// GetSecret retrieves a secret by its path/name
	// Path format depends on implementation:
	//   - Local: file path relative to the base directory
	//   - AWS: "zift/merchants/{merchant}/credentials" or a full ARN
	//   - GCP: secret name, resolved to "projects/{project}/secrets/{name}/versions/latest"
	//   - Vault: path below the KV mount, e.g. "zift/merchants/{merchant}"
	// Returns error if:
	//   - Secret does not exist
	//   - Insufficient permissions
	//   - Network communication fails
	GetSecret(ctx context.Context, path string) (*Secret, error)
}
