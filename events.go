package starwake

import "github.com/go-gl/mathgl/mgl64"

// RespawnEvent reports a flame recycled at the engine mouth.
type RespawnEvent struct {
	// Index is the flame's index in the flame ensemble.
	Index int
	// Frame is the Advance call (1-based) during which the respawn happened.
	Frame uint64
	// Time is the frame's current time in seconds.
	Time float64
	// From is the position that crossed the reset plane; To is the new one.
	From mgl64.Vec3
	To   mgl64.Vec3
}

// EventSink receives field events. When set on a Field, every flame respawn
// is forwarded to it synchronously from Advance.
type EventSink interface {
	EmitRespawn(event RespawnEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(RespawnEvent)

// EmitRespawn calls f.
func (f EventSinkFunc) EmitRespawn(e RespawnEvent) { f(e) }
