package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringAndTemplate(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	assert.Equal(t, "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02", String())
	assert.Equal(t, "{{.Name}} version v1.2.3\ncommit: abc123\nbuilt: 2026-01-02\n", Template())
}
