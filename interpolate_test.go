package kinetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolateEmptySequence(t *testing.T) {
	assert.Equal(t, float32(0), Interpolate(nil, 500))
}

func TestInterpolateClampsBeforeAndAfter(t *testing.T) {
	frames := []Keyframe{
		{Time: 0, Value: 0, Easing: "linear"},
		{Time: 1000, Value: 100, Easing: "linear"},
	}
	assert.Equal(t, float32(0), Interpolate(frames, -500))
	assert.Equal(t, float32(100), Interpolate(frames, 1500))
}

func TestInterpolateLinear(t *testing.T) {
	frames := []Keyframe{
		{Time: 0, Value: 0, Easing: "linear"},
		{Time: 1000, Value: 100, Easing: "linear"},
	}
	assert.Equal(t, float32(50), Interpolate(frames, 500))
}

func TestInterpolateEaseIn(t *testing.T) {
	frames := []Keyframe{
		{Time: 0, Value: 0, Easing: "ease-in"},
		{Time: 1000, Value: 100, Easing: "ease-in"},
	}
	assert.Equal(t, float32(25), Interpolate(frames, 500))
}

func TestInterpolateZeroDurationReturnsBeforeValue(t *testing.T) {
	frames := []Keyframe{
		{Time: 500, Value: 10, Easing: "linear"},
		{Time: 500, Value: 90, Easing: "linear"},
	}
	assert.Equal(t, float32(10), Interpolate(frames, 500))
}

func TestInterpolatePicksEarliestBracketingPairOnTies(t *testing.T) {
	frames := []Keyframe{
		{Time: 0, Value: 0, Easing: "linear"},
		{Time: 500, Value: 40, Easing: "linear"},
		{Time: 500, Value: 90, Easing: "linear"},
		{Time: 1000, Value: 100, Easing: "linear"},
	}
	// t == 500 bracketed by index 0 (time 0..500) takes precedence over
	// the zero-duration pair at index 1..2.
	assert.Equal(t, float32(40), Interpolate(frames, 500))
}

func TestBounceEaseOutSegments(t *testing.T) {
	frames := []Keyframe{
		{Time: 0, Value: 0, Easing: "bounce"},
		{Time: 1000, Value: 1, Easing: "bounce"},
	}
	got := Interpolate(frames, 900)
	want := bounceEaseOut(0.9)
	assert.InDelta(t, float64(want), float64(got), 1e-6)
}

func TestElasticEaseOutEndpoints(t *testing.T) {
	assert.Equal(t, float32(0), elasticEaseOut(0))
	assert.Equal(t, float32(1), elasticEaseOut(1))
}

func TestCubicBezierMatchesCSSEase(t *testing.T) {
	got := solveCubicBezier("cubic-bezier(0.25,0.1,0.25,1.0)", 0.5)
	assert.InDelta(t, 0.8024, float64(got), 1e-3)
}

func TestCubicBezierMalformedFallsBackToIdentity(t *testing.T) {
	got := solveCubicBezier("cubic-bezier(0.25,0.1,0.25)", 0.42)
	assert.Equal(t, float32(0.42), got)
}

func TestApplyEasingUnknownNameFallsBackToLinear(t *testing.T) {
	assert.Equal(t, float32(0.3), applyEasing("wobble", 0.3))
}

func TestInterpolateNaNGuardNotTriggered(t *testing.T) {
	// sanity: elastic never produces NaN for interior progress values.
	for _, p := range []float32{0.1, 0.25, 0.5, 0.75, 0.9} {
		got := elasticEaseOut(p)
		assert.False(t, math.IsNaN(float64(got)))
	}
}
