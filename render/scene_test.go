package render

import (
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/starwake"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(16 * time.Millisecond)
	return c.t
}

func newTestScene(t *testing.T, opts SceneOptions) *Scene {
	t.Helper()
	field, err := starwake.New(starwake.DefaultConfig(), starwake.WithSampler(starwake.NewSampler(7)))
	if err != nil {
		t.Fatal(err)
	}
	clk := &stepClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts.Clock = starwake.NewFrameClockWith(field.Config().Clock, clk.now)
	s, err := NewScene(field, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSceneBindsFieldAndProps(t *testing.T) {
	s := newTestScene(t, SceneOptions{})
	if got, want := s.Host().Len(), 140+len(DefaultProps()); got != want {
		t.Errorf("host meshes = %d, want %d", got, want)
	}
}

func TestNewSceneEmptyProps(t *testing.T) {
	s := newTestScene(t, SceneOptions{Props: []Prop{}})
	if got := s.Host().Len(); got != 140 {
		t.Errorf("host meshes = %d, want 140", got)
	}
}

func TestSceneStepAdvancesAndPushes(t *testing.T) {
	s := newTestScene(t, SceneOptions{Props: []Prop{}})
	s.step()
	s.step()

	f := s.Field()
	if f.Frame() != 2 {
		t.Errorf("Frame() = %d, want 2", f.Frame())
	}
	m := f.Flames().At(0)
	h, _ := m.Handle()
	got, _ := s.Host().Transform(h)
	if got != m.Transform {
		t.Errorf("host transform = %v, want %v", got, m.Transform)
	}
	if s.alpha <= 0 {
		t.Errorf("alpha = %v, want fade-in started", s.alpha)
	}
}

func TestScenePausedSkipsAdvance(t *testing.T) {
	s := newTestScene(t, SceneOptions{Props: []Prop{}})
	s.SetPaused(true)
	before := s.Field().Flames().At(0).Transform
	s.step()
	if s.Field().Frame() != 0 {
		t.Errorf("Frame() = %d while paused", s.Field().Frame())
	}
	if s.Field().Flames().At(0).Transform != before {
		t.Error("flame moved while paused")
	}
}

func TestSceneLayout(t *testing.T) {
	s := newTestScene(t, SceneOptions{Props: []Prop{}})
	w, h := s.Layout(640, 480)
	if w != 640 || h != 480 || s.w != 640 || s.h != 480 {
		t.Errorf("Layout = %d x %d, stored %d x %d", w, h, s.w, s.h)
	}
}

func TestSceneFlyIn(t *testing.T) {
	s := newTestScene(t, SceneOptions{Props: []Prop{}, FlyIn: true})
	if !s.Camera().Flying() {
		t.Error("FlyIn option did not start a fly-in")
	}
}

func TestHUDText(t *testing.T) {
	text := hudText(59.5, 60, 25, 100, 12, false)
	for _, want := range []string{"FPS: 59.5", "TPS: 60.0", "flames: 25 stars: 100", "respawns: 12"} {
		if !strings.Contains(text, want) {
			t.Errorf("hud missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "paused") {
		t.Error("hud shows paused")
	}
	if !strings.Contains(hudText(0, 0, 0, 0, 0, true), "paused") {
		t.Error("hud hides paused")
	}
}

func TestSceneScreenshotQueue(t *testing.T) {
	s := newTestScene(t, SceneOptions{})
	if s.shotDir != "screenshots" {
		t.Errorf("shotDir = %q, want default", s.shotDir)
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.shots) != 2 {
		t.Errorf("queued = %d, want 2", len(s.shots))
	}

	s = newTestScene(t, SceneOptions{ScreenshotDir: "out"})
	if s.shotDir != "out" {
		t.Errorf("shotDir = %q, want out", s.shotDir)
	}
}
