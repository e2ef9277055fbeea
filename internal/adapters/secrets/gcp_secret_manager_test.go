package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCPSecretVersionName(t *testing.T) {
	assert.Equal(t,
		"projects/acme/secrets/zift-credentials/versions/latest",
		gcpSecretVersionName("acme", "zift-credentials"),
	)
	assert.Equal(t,
		"projects/other/secrets/zift/versions/3",
		gcpSecretVersionName("acme", "projects/other/secrets/zift/versions/3"),
	)
}

func TestExtractVersionFromName(t *testing.T) {
	assert.Equal(t, "1", extractVersionFromName("projects/123/secrets/my-secret/versions/1"))
	assert.Equal(t, "unknown", extractVersionFromName("projects/123/secrets/my-secret/versions/"))
	assert.Equal(t, "unknown", extractVersionFromName(""))
}
