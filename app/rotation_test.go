package app

import (
	"math"
	"testing"

	"chromaspiral/quarkgl"

	"github.com/stretchr/testify/assert"
)

func TestRotationAccumulatesFixedStep(t *testing.T) {
	g := quarkgl.NewGroup("spin")
	d := NewRotationDriver(g)
	d.Start()
	for n := 1; n <= 200; n++ {
		d.Tick()
		if n == 1 || n == 57 || n == 200 {
			assert.InDelta(t, -0.01*float64(n), g.Rotation.Y, 1e-9, "after %d ticks", n)
		}
	}
	assert.InDelta(t, -2.0, g.Rotation.Y, 1e-9)
	assert.Equal(t, uint64(200), d.Ticks())
	assert.True(t, d.Active())

	// Only Y moves.
	assert.Zero(t, g.Rotation.X)
	assert.Zero(t, g.Rotation.Z)
}

func TestRotationIsUnbounded(t *testing.T) {
	g := quarkgl.NewGroup("spin")
	d := NewRotationDriver(g)
	d.Start()
	for i := 0; i < 1000; i++ {
		d.Tick()
	}
	assert.Less(t, g.Rotation.Y, -2*math.Pi)
	assert.InDelta(t, -10.0, g.Rotation.Y, 1e-9)
}

func TestRotationStoppedIgnoresTicks(t *testing.T) {
	g := quarkgl.NewGroup("spin")
	d := NewRotationDriver(g)
	d.Tick()
	assert.Zero(t, g.Rotation.Y)

	d.Start()
	d.Tick()
	d.Stop()
	d.Tick()
	assert.InDelta(t, -0.01, g.Rotation.Y, 1e-12)
	assert.Equal(t, uint64(1), d.Ticks())
	assert.False(t, d.Active())
}

func TestRotationWithoutNodeIsNoop(t *testing.T) {
	d := NewRotationDriver(nil)
	d.Start()
	assert.NotPanics(t, d.Tick)
	assert.Zero(t, d.Ticks())

	g := quarkgl.NewGroup("late")
	d.Attach(g)
	d.Tick()
	assert.InDelta(t, -0.01, g.Rotation.Y, 1e-12)
}
