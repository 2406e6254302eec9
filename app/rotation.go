package app

import "chromaspiral/quarkgl"

// RotationStep is the Y rotation removed from the spinning group per tick.
const RotationStep = 0.01

// RotationDriver spins a group around the vertical axis by a fixed step per
// frame tick. The step does not depend on frame time, so a slow frame shows up
// as stutter rather than a larger jump.
type RotationDriver struct {
	node   *quarkgl.Group
	step   float64
	active bool
	ticks  uint64
}

// NewRotationDriver returns an inactive driver for node. node may be nil and
// attached later.
func NewRotationDriver(node *quarkgl.Group) *RotationDriver {
	return &RotationDriver{node: node, step: RotationStep}
}

// Attach replaces the driven node.
func (d *RotationDriver) Attach(node *quarkgl.Group) { d.node = node }

// Start begins accepting ticks.
func (d *RotationDriver) Start() { d.active = true }

// Stop ignores further ticks. The node keeps its current rotation.
func (d *RotationDriver) Stop() { d.active = false }

func (d *RotationDriver) Active() bool { return d.active }

// Ticks returns how many ticks rotated the node.
func (d *RotationDriver) Ticks() uint64 { return d.ticks }

// Tick advances the rotation by one step. It is a no-op while stopped or when
// no node is attached.
func (d *RotationDriver) Tick() {
	if !d.active || d.node == nil {
		return
	}
	d.node.Rotation.Y -= d.step
	d.ticks++
}
