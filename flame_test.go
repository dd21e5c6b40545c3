package starwake

import (
	"math"
	"testing"
)

func newTestField(t *testing.T, cfg Config, opts ...Option) *Field {
	t.Helper()
	f, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestGenerateFlamesDefaults(t *testing.T) {
	cfg := DefaultConfig().Flames
	members := GenerateFlames(cfg, NewSampler(7))
	if len(members) != 25 {
		t.Fatalf("count = %d, want 25", len(members))
	}
	for i, m := range members {
		p := m.Position()
		if !cfg.X.Contains(p[0]) || !cfg.Y.Contains(p[1]) || !cfg.Z.Contains(p[2]) {
			t.Errorf("flame %d position %v outside spawn box", i, p)
		}
		assertNear(t, "base size", m.BaseSize, 0.04+0.02*(-p[0]-0.6))
		if m.BaseSize < 0.04-epsilon || m.BaseSize > 0.05+epsilon {
			t.Errorf("flame %d base size %v outside [0.04, 0.05]", i, m.BaseSize)
		}
		assertNear(t, "scale", m.Scale(), m.BaseSize)
		if m.Phase < 0 || m.Phase >= 2*math.Pi {
			t.Errorf("flame %d phase %v outside [0, 2π)", i, m.Phase)
		}
		if m.Color.R != 1 || m.Color.B != 0.1 || m.Color.G < 0.5 || m.Color.G > 0.9 {
			t.Errorf("flame %d color %v not warm", i, m.Color)
		}
		if !IsScaleTranslate(m.Transform, epsilon) {
			t.Errorf("flame %d transform has rotation: %v", i, m.Transform)
		}
	}
}

func TestGenerateFlamesDrawOrder(t *testing.T) {
	cfg := DefaultConfig().Flames
	cfg.Count = 1
	m := GenerateFlames(cfg, script(0.5, 0.5, 0.5, 0.25, 0.5))[0]

	p := m.Position()
	assertNear(t, "x", p[0], -0.85)
	assertNear(t, "y", p[1], 0)
	assertNear(t, "z", p[2], 0)
	assertNear(t, "phase", m.Phase, math.Pi/2)
	assertNear(t, "green", m.Color.G, 0.7)
	assertNear(t, "base", m.BaseSize, 0.045)
}

func TestFlamePulseAndPositionBounds(t *testing.T) {
	f := newTestField(t, DefaultConfig(), WithSampler(NewSampler(1)))
	flames := f.Flames()
	bases := make([]float64, flames.Len())
	for i := range bases {
		bases[i] = flames.At(i).BaseSize
	}

	const dt = 1.0 / 60
	for frame := 1; frame <= 600; frame++ {
		f.Advance(float64(frame)*dt, dt)
		for i := 0; i < flames.Len(); i++ {
			m := flames.At(i)
			s := m.Scale()
			if s < 0.4*bases[i]-epsilon || s > bases[i]+epsilon {
				t.Fatalf("frame %d flame %d scale %v outside [%v, %v]", frame, i, s, 0.4*bases[i], bases[i])
			}
			x := m.Position()[0]
			if x < -2.0 || x > -0.6 {
				t.Fatalf("frame %d flame %d x = %v outside [-2, -0.6]", frame, i, x)
			}
		}
	}
	if f.Respawns() == 0 {
		t.Error("expected flames to respawn over ten seconds")
	}
}

func TestFlameResetIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Flames.Count = 1
	cfg.Flames.X = Range{-2.0, -2.0}
	f := newTestField(t, cfg, WithSampler(NewSampler(5)))
	m := f.Flames().At(0)

	f.Advance(0.5, 0)
	if x := m.Position()[0]; x != -2.0 {
		t.Fatalf("x = %v, want exactly -2.0 (no reset at the plane)", x)
	}
	if f.Respawns() != 0 {
		t.Fatalf("respawns = %d, want 0", f.Respawns())
	}

	f.Advance(0.51, 0.01)
	assertNear(t, "x after crossing", m.Position()[0], -0.6)
	if f.Respawns() != 1 {
		t.Errorf("respawns = %d, want 1", f.Respawns())
	}
}

func TestFlameRespawnScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Flames.X = Range{-0.6, -0.6}

	var events []RespawnEvent
	f := newTestField(t, cfg,
		WithSampler(NewSampler(9)),
		WithEventSink(EventSinkFunc(func(e RespawnEvent) { events = append(events, e) })),
	)
	flames := f.Flames()
	phases := make([]float64, flames.Len())
	bases := make([]float64, flames.Len())
	for i := range phases {
		phases[i] = flames.At(i).Phase
		bases[i] = flames.At(i).BaseSize
	}

	for call := 1; call <= 3; call++ {
		f.Advance(0, 1.0)
		for i := 0; i < flames.Len(); i++ {
			m := flames.At(i)
			p := m.Position()
			assertNear(t, "x", p[0], -0.6)
			if !cfg.Flames.Y.Contains(p[1]) || !cfg.Flames.Z.Contains(p[2]) {
				t.Errorf("call %d flame %d jitter %v outside ranges", call, i, p)
			}
			if m.Phase != phases[i] || m.BaseSize != bases[i] {
				t.Errorf("call %d flame %d phase/base regenerated", call, i)
			}
		}
	}

	if len(events) != 75 {
		t.Fatalf("events = %d, want 75", len(events))
	}
	for _, e := range events {
		assertNear(t, "from x", e.From[0], -3.6)
		assertNear(t, "to x", e.To[0], -0.6)
	}
	if events[0].Frame != 1 || events[74].Frame != 3 {
		t.Errorf("frames = %d..%d, want 1..3", events[0].Frame, events[74].Frame)
	}
	if events[24].Index != 24 {
		t.Errorf("event 24 index = %d, want 24", events[24].Index)
	}
}

func TestFlameZeroDeltaFreezesDrift(t *testing.T) {
	f := newTestField(t, DefaultConfig(), WithSampler(NewSampler(2)))
	flames := f.Flames()
	before := flames.Members()

	f.Advance(0, 0)
	first := flames.Members()
	for _, now := range []float64{0.1, 0.37, 2.5} {
		f.Advance(now, 0)
	}
	after := flames.Members()

	changed := false
	for i := range before {
		if before[i].Position() != after[i].Position() {
			t.Errorf("flame %d moved with dt=0: %v -> %v", i, before[i].Position(), after[i].Position())
		}
		if first[i].Scale() != after[i].Scale() {
			changed = true
		}
	}
	if !changed {
		t.Error("pulse did not advance with current time")
	}
}
