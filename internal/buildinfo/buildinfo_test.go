package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringIncludesBinaryAndVersion(t *testing.T) {
	out := String("px")
	assert.Contains(t, out, "px")
	assert.Contains(t, out, Version)
	assert.Contains(t, out, Commit)
	assert.Contains(t, out, OS())
	assert.Contains(t, out, Arch())
}
