package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeChecksum_StableForIdenticalProjects(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p1 := Project{Path: "/a", Git: GitStatus{LastCommitHash: "abc"}, AccessCount: 3, LastAccessed: &now}
	p2 := p1

	assert.Equal(t, computeChecksum(p1), computeChecksum(p2))
}

func TestComputeChecksum_DiffersOnAccessCount(t *testing.T) {
	t.Parallel()

	p1 := Project{Path: "/a", AccessCount: 1}
	p2 := Project{Path: "/a", AccessCount: 2}

	assert.NotEqual(t, computeChecksum(p1), computeChecksum(p2))
}
