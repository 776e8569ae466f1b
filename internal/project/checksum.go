package project

import (
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
)

// computeChecksum fingerprints the fields that matter for detecting whether
// an in-memory Project differs from its previously-known state: path,
// last commit hash, dirty flag, access count, and last-accessed time. It is
// never the source of truth (Project's own fields are); it only lets sync
// and record_access skip a disk write when nothing observable changed.
func computeChecksum(p Project) uint64 {
	var b strings.Builder
	b.WriteString(p.Path)
	b.WriteByte('\x00')
	b.WriteString(p.Git.LastCommitHash)
	b.WriteByte('\x00')
	b.WriteString(strconv.FormatBool(p.Git.HasUncommitted))
	b.WriteByte('\x00')
	b.WriteString(strconv.Itoa(p.AccessCount))
	b.WriteByte('\x00')
	if p.LastAccessed != nil {
		b.WriteString(p.LastAccessed.UTC().Format(time.RFC3339Nano))
	}
	return xxh3.HashString(b.String())
}
