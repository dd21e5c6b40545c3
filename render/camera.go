package render

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

const (
	maxPitch    = math.Pi/2 - 0.05
	minDistance = 1.5
	maxDistance = 60.0
)

// Camera is an orbit camera looking at Target. Yaw, Pitch and Distance are
// the values used for rendering; Orbit and Zoom move their goals, and Update
// springs the rendered values toward the goals.
type Camera struct {
	Target mgl64.Vec3
	// Yaw is the rotation about +Y in radians; 0 looks down -Z from +Z.
	Yaw float64
	// Pitch is the elevation in radians, clamped short of the poles.
	Pitch float64
	// Distance is the eye's distance from Target.
	Distance float64
	// FovY is the vertical field of view in radians.
	FovY      float64
	Near, Far float64

	goalYaw, goalPitch, goalDistance float64
	velYaw, velPitch, velDistance    float64

	spring harmonica.Spring
	fly    *Tween
}

// NewCamera creates a camera whose spring runs at tps updates per second.
func NewCamera(tps int) *Camera {
	if tps <= 0 {
		tps = 60
	}
	c := &Camera{
		Yaw:      0.6,
		Pitch:    0.25,
		Distance: 6,
		FovY:     mgl64.DegToRad(45),
		Near:     0.1,
		Far:      500,
		spring:   harmonica.NewSpring(harmonica.FPS(tps), 6.0, 1.0),
	}
	c.goalYaw, c.goalPitch, c.goalDistance = c.Yaw, c.Pitch, c.Distance
	return c
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl64.Vec3 {
	sinYaw, cosYaw := math.Sincos(c.Yaw)
	sinPitch, cosPitch := math.Sincos(c.Pitch)
	return c.Target.Add(mgl64.Vec3{
		cosPitch * sinYaw,
		sinPitch,
		cosPitch * cosYaw,
	}.Mul(c.Distance))
}

// View returns the world-to-view matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a w x h pixel target.
func (c *Camera) Projection(w, h int) mgl64.Mat4 {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Project maps a world point to pixel coordinates on a w x h target with the
// origin at the top-left. depth is the distance along the view direction.
// ok is false for points closer than Near or beyond Far.
func (c *Camera) Project(p mgl64.Vec3, w, h int) (x, y, depth float64, ok bool) {
	return project(c.Projection(w, h).Mul4(c.View()), p, w, h, c.Near, c.Far)
}

func project(viewProj mgl64.Mat4, p mgl64.Vec3, w, h int, near, far float64) (x, y, depth float64, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	depth = clip[3]
	if depth < near || depth > far {
		return 0, 0, depth, false
	}
	ndcX, ndcY := clip[0]/depth, clip[1]/depth
	x = (ndcX + 1) * 0.5 * float64(w)
	y = (1 - ndcY) * 0.5 * float64(h)
	return x, y, depth, true
}

// PixelsPerUnit returns how many pixels one world unit spans at the given
// view depth on a target h pixels tall.
func (c *Camera) PixelsPerUnit(depth float64, h int) float64 {
	if depth <= 0 {
		return 0
	}
	return float64(h) / (2 * math.Tan(c.FovY/2) * depth)
}

// Orbit moves the yaw and pitch goals by the given deltas in radians.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.goalYaw += dYaw
	c.goalPitch = mgl64.Clamp(c.goalPitch+dPitch, -maxPitch, maxPitch)
}

// Zoom multiplies the distance goal by factor, clamped to the allowed range.
// A running fly-in is cancelled.
func (c *Camera) Zoom(factor float64) {
	c.fly = nil
	c.goalDistance = mgl64.Clamp(c.goalDistance*factor, minDistance, maxDistance)
}

// Goal returns the yaw, pitch and distance the camera is moving toward.
func (c *Camera) Goal() (yaw, pitch, distance float64) {
	return c.goalYaw, c.goalPitch, c.goalDistance
}

// FlyIn jumps the camera out to from and tweens it back to the current
// distance goal over duration seconds.
func (c *Camera) FlyIn(from float64, duration float32, fn ease.TweenFunc) {
	c.Distance = from
	c.velDistance = 0
	c.fly = NewTween(&c.Distance, c.goalDistance, duration, fn)
}

// Flying reports whether a fly-in is in progress.
func (c *Camera) Flying() bool {
	return c.fly != nil && !c.fly.Done
}

// Update advances the fly-in tween and the orbit springs by one tick.
func (c *Camera) Update(dt float32) {
	if c.Flying() {
		c.fly.Update(dt)
	} else {
		c.fly = nil
		c.Distance, c.velDistance = c.spring.Update(c.Distance, c.velDistance, c.goalDistance)
	}
	c.Yaw, c.velYaw = c.spring.Update(c.Yaw, c.velYaw, c.goalYaw)
	c.Pitch, c.velPitch = c.spring.Update(c.Pitch, c.velPitch, c.goalPitch)
}
