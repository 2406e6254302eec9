package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortPrefersVersionThenCommit(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev", Short())

	Commit = "0123456789abcdef"
	assert.Equal(t, "0123456", Short())

	Version = "v0.3.1"
	assert.Equal(t, "v0.3.1", Short())
	assert.Contains(t, Long(), "commit: 0123456789abcdef")
}
