package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "1.2.0", "abc123", "2024-05-01"
	assert.Equal(t, "consolecss version 1.2.0\n  commit: abc123\n  built:  2024-05-01\n", String("consolecss"))
}
