package frecency

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore_NoLastAccessed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got := Score(5, nil, now)
	want := math.Log(6) * 10
	assert.InDelta(t, want, got, 0.001)
}

func TestScore_RecencyBuckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		ageDays    float64
		wantBucket float64
	}{
		{"same day", 0, 100},
		{"4 days", 4, 100},
		{"5 days", 5, 70},
		{"14 days", 14, 70},
		{"15 days", 15, 50},
		{"31 days", 31, 50},
		{"32 days", 32, 30},
		{"90 days", 90, 30},
		{"91 days", 91, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			last := now.Add(-time.Duration(tt.ageDays*24) * time.Hour)
			got := Score(0, &last, now)
			assert.InDelta(t, tt.wantBucket, got, 0.001)
		})
	}
}

func TestScore_MonotoneInAccessCount(t *testing.T) {
	t.Parallel()

	now := time.Now()
	last := now.Add(-time.Hour)

	low := Score(1, &last, now)
	high := Score(10, &last, now)
	assert.Greater(t, high, low)
}

func TestScore_NonIncreasingInAge(t *testing.T) {
	t.Parallel()

	now := time.Now()
	recent := now.Add(-time.Hour)
	old := now.Add(-100 * 24 * time.Hour)

	recentScore := Score(3, &recent, now)
	oldScore := Score(3, &old, now)
	assert.GreaterOrEqual(t, recentScore, oldScore)
}

func TestScore_ProjectA_BeforeProjectB(t *testing.T) {
	t.Parallel()

	now := time.Now()
	aLast := now.Add(-2 * 24 * time.Hour)
	bLast := now.Add(-60 * 24 * time.Hour)

	a := Score(5, &aLast, now)
	b := Score(20, &bLast, now)

	assert.InDelta(t, 117.92, a, 0.01)
	assert.InDelta(t, 60.45, b, 0.01)
	assert.Greater(t, a, b)
}

func TestScore_BoundedAbove(t *testing.T) {
	t.Parallel()

	now := time.Now()
	last := now
	got := Score(1000, &last, now)
	bound := math.Log(1001)*10 + 100
	assert.LessOrEqual(t, got, bound+0.001)
}
