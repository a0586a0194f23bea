package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWeeks(t *testing.T) {
	assert.Equal(t, defaultVelocityWeeks, normalizeWeeks(0))
	assert.Equal(t, defaultVelocityWeeks, normalizeWeeks(-3))
	assert.Equal(t, 1, normalizeWeeks(1))
	assert.Equal(t, 12, normalizeWeeks(12))
	assert.Equal(t, maxVelocityWeeks, normalizeWeeks(27))
	assert.Equal(t, maxVelocityWeeks, normalizeWeeks(1000))
}

func TestNormalizePeriods(t *testing.T) {
	assert.Equal(t, defaultBurndownPeriods, normalizePeriods(0))
	assert.Equal(t, defaultBurndownPeriods, normalizePeriods(-1))
	// 少于两个点画不出折线
	assert.Equal(t, 2, normalizePeriods(1))
	assert.Equal(t, 2, normalizePeriods(2))
	assert.Equal(t, 30, normalizePeriods(30))
	assert.Equal(t, maxBurndownPeriods, normalizePeriods(61))
}

func TestAgeInDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ageInDays(now, now.Add(-10*time.Hour)))
	assert.Equal(t, 1, ageInDays(now, now.Add(-25*time.Hour)))
	assert.Equal(t, 7, ageInDays(now, now.AddDate(0, 0, -7)))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.3, round1(33.333333))
	assert.Equal(t, 66.7, round1(66.666666))
	assert.Equal(t, 0.17, round2(1.0/6.0))
	assert.Equal(t, 2.0, round1(2.0))
}

func TestPriorityWeights(t *testing.T) {
	weights := priorityWeights()

	assert.Len(t, weights, 5)
	assert.Equal(t, int64(4), weights["highest"])
	assert.Equal(t, int64(3), weights["high"])
	assert.Equal(t, int64(2), weights["medium"])
	assert.Equal(t, int64(1), weights["low"])
	assert.Equal(t, int64(0), weights["lowest"])
}
