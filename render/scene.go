package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/starwake"
	"github.com/tanema/gween/ease"
)

const (
	orbitKeySpeed   = 1.5   // radians per second
	orbitDragSpeed  = 0.005 // radians per pixel
	zoomStep        = 1.1
	fadeDuration    = 1.5
	flyInDistance   = 30.0
	flyInDuration   = 2.5
	debugLogEvery   = 120
	hudRefreshEvery = 0.5
)

var background = color.RGBA{R: 2, G: 2, B: 8, A: 255}

// SceneOptions configures NewScene. The zero value is usable.
type SceneOptions struct {
	// Logger receives debug statistics. Nil discards them.
	Logger *log.Logger
	// Props are bound alongside the field. Nil selects DefaultProps;
	// an empty non-nil slice binds none.
	Props []Prop
	// Clock drives Advance. Nil creates a wall-clock FrameClock from the
	// field's clock config.
	Clock *starwake.FrameClock
	// TPS is the update rate the camera springs and tweens assume.
	// Zero means ebiten's default.
	TPS int
	// Debug logs per-frame statistics every debugLogEvery frames.
	Debug bool
	// ShowFPS starts with the HUD overlay visible.
	ShowFPS bool
	// FlyIn starts the camera far out and flies it to its resting distance.
	FlyIn bool
	// ScreenshotDir receives captures taken with P. Empty means
	// "screenshots".
	ScreenshotDir string
}

// Scene is an ebiten.Game that animates a starwake.Field and draws it with
// the props through a Host.
type Scene struct {
	field  *starwake.Field
	host   *Host
	clock  *starwake.FrameClock
	cam    *Camera
	buf    commandBuffer
	logger *log.Logger

	tick    float32
	paused  bool
	debug   bool
	showFPS bool

	alpha float64
	fade  *Tween

	dragging     bool
	dragX, dragY int

	hud      string
	hudTimer float64

	shots   []string
	shotDir string

	w, h int
	glow *ebiten.Image
}

// NewScene binds field and the props to a new Host and returns a Scene
// ready to be passed to Run.
func NewScene(field *starwake.Field, opts SceneOptions) (*Scene, error) {
	tps := opts.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	props := opts.Props
	if props == nil {
		props = DefaultProps()
	}
	clock := opts.Clock
	if clock == nil {
		clock = starwake.NewFrameClock(field.Config().Clock)
	}

	host := NewHost()
	if _, err := BindProps(host, props); err != nil {
		return nil, err
	}
	if err := field.Bind(host); err != nil {
		return nil, err
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = "screenshots"
	}

	s := &Scene{
		field:   field,
		shotDir: shotDir,
		host:    host,
		clock:   clock,
		cam:     NewCamera(tps),
		logger:  logger,
		tick:    1 / float32(tps),
		debug:   opts.Debug,
		showFPS: opts.ShowFPS,
		w:       1280,
		h:       720,
	}
	s.fade = NewTween(&s.alpha, 1, fadeDuration, ease.OutQuad)
	if opts.FlyIn {
		s.cam.FlyIn(flyInDistance, flyInDuration, ease.OutCubic)
	}
	logger.Debug("scene ready", "meshes", host.Len(), "props", len(props), "tps", tps)
	return s, nil
}

// Field returns the animated field.
func (s *Scene) Field() *starwake.Field { return s.field }

// Host returns the host holding every bound instance.
func (s *Scene) Host() *Host { return s.host }

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.cam }

// Paused reports whether the animation is paused.
func (s *Scene) Paused() bool { return s.paused }

// SetPaused pauses or resumes the animation. The camera keeps moving while
// paused.
func (s *Scene) SetPaused(p bool) { s.paused = p }

// Update implements ebiten.Game.
func (s *Scene) Update() error {
	if err := s.handleInput(); err != nil {
		return err
	}
	s.step()
	return nil
}

// step advances the field, camera and fade by one tick.
func (s *Scene) step() {
	now, dt := s.clock.Tick()
	if !s.paused {
		s.field.Advance(now, dt)
	}
	s.cam.Update(s.tick)
	s.fade.Update(s.tick)
	s.updateHUD(float64(s.tick))
}

func (s *Scene) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.paused = !s.paused
		s.logger.Debug("pause", "paused", s.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.showFPS = !s.showFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Screenshot(fmt.Sprintf("frame%d", s.field.Frame()))
	}

	step := orbitKeySpeed * float64(s.tick)
	var dYaw, dPitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch -= step
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if s.dragging {
			dYaw -= float64(x-s.dragX) * orbitDragSpeed
			dPitch += float64(y-s.dragY) * orbitDragSpeed
		}
		s.dragging = true
		s.dragX, s.dragY = x, y
	} else {
		s.dragging = false
	}
	if dYaw != 0 || dPitch != 0 {
		s.cam.Orbit(dYaw, dPitch)
	}

	_, wheel := ebiten.Wheel()
	switch {
	case wheel > 0 || inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		s.cam.Zoom(1 / zoomStep)
	case wheel < 0 || inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		s.cam.Zoom(zoomStep)
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if s.glow == nil {
		s.glow = newGlowImage()
	}

	start := time.Now()
	cmds := s.buf.build(s.host, s.cam, s.w, s.h)
	build := time.Since(start)

	gw := float64(s.glow.Bounds().Dx())
	alpha := float32(s.alpha)
	for i := range cmds {
		c := &cmds[i]
		switch c.template {
		case TemplateQuad:
			var op ebiten.DrawImageOptions
			scale := 2 * float64(c.radius) / gw
			op.GeoM.Translate(-gw/2, -gw/2)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(c.x), float64(c.y))
			op.ColorScale.Scale(float32(c.color.R), float32(c.color.G), float32(c.color.B), 1)
			op.ColorScale.ScaleAlpha(alpha)
			op.Blend = ebiten.BlendLighter
			screen.DrawImage(s.glow, &op)
		case TemplateSphere:
			vector.DrawFilledCircle(screen, c.x, c.y, c.radius, toRGBA(c.color, alpha), true)
		case TemplateShip:
			drawShip(screen, c, alpha)
		}
	}

	if s.showFPS {
		s.drawHUD(screen)
	}
	if s.debug && s.field.Frame()%debugLogEvery == 0 {
		s.debugLog(debugStats{
			frame:     s.field.Frame(),
			commands:  len(cmds),
			culled:    s.buf.culled,
			respawns:  s.field.Respawns(),
			buildTime: build,
		})
	}
	s.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.w, s.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// drawShip draws a hull stroke pointing along -X with a canopy dot.
func drawShip(dst *ebiten.Image, c *drawCommand, alpha float32) {
	hull := toRGBA(c.color, alpha)
	r := c.radius
	width := max(r*0.4, 1)
	vector.StrokeLine(dst, c.x-r*1.5, c.y, c.x+r*1.5, c.y, width, hull, true)
	vector.StrokeLine(dst, c.x+r*0.5, c.y, c.x+r*1.5, c.y-r*0.6, width*0.5, hull, true)
	vector.StrokeLine(dst, c.x+r*0.5, c.y, c.x+r*1.5, c.y+r*0.6, width*0.5, hull, true)
	canopy := toRGBA(starwake.Color{R: 0.6, G: 0.8, B: 1}, alpha)
	vector.DrawFilledCircle(dst, c.x-r*0.6, c.y-width*0.3, max(width*0.45, 1), canopy, true)
}

// toRGBA converts a linear [0,1] color to premultiplied RGBA with alpha.
func toRGBA(c starwake.Color, alpha float32) color.RGBA {
	a := float64(alpha)
	ch := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v*a)) * 255))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(1)}
}

