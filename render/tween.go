package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 field toward a target value. Call Update(dt)
// each frame; the field is written on every update until Done.
//
// There is no global animation manager; the owner calls Update itself.
type Tween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewTween creates a Tween that animates *field from its current value to
// to over duration seconds using the easing function.
func NewTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
func (t *Tween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}
