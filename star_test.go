package starwake

import (
	"math"
	"testing"
)

var (
	warmLow  = Color{1, 0.8, 0.6}
	whiteHot = Color{0.8, 0.9, 1.0}
	redDwarf = Color{1, 0.6, 0.5}
)

func TestGenerateStarsDefaults(t *testing.T) {
	cfg := DefaultConfig().Stars
	members := GenerateStars(cfg, NewSampler(4))
	if len(members) != 100 {
		t.Fatalf("count = %d, want 100", len(members))
	}
	for i, m := range members {
		r := m.Position().Len()
		if r < 30-epsilon || r > 100+epsilon {
			t.Errorf("star %d radius %v outside [30, 100]", i, r)
		}
		if m.BaseSize < 0.014-epsilon || m.BaseSize > 0.028+epsilon {
			t.Errorf("star %d base size %v outside [0.014, 0.028]", i, m.BaseSize)
		}
		if m.Phase < 0 || m.Phase >= 2*math.Pi {
			t.Errorf("star %d phase %v outside [0, 2π)", i, m.Phase)
		}
		warm := m.Color.R == 1 && m.Color.B == 0.6 && m.Color.G >= 0.8 && m.Color.G <= 1
		if !warm && m.Color != whiteHot && m.Color != redDwarf {
			t.Errorf("star %d color %v not in any band", i, m.Color)
		}
		if !IsScaleTranslate(m.Transform, epsilon) {
			t.Errorf("star %d transform has rotation", i)
		}
	}
}

func TestStarColorBuckets(t *testing.T) {
	bands := DefaultConfig().Stars.Bands
	tests := []struct {
		temp float64
		want Color
	}{
		{0.0, warmLow},
		{0.6999, warmLow},
		{0.7, whiteHot},
		{0.75, whiteHot},
		{0.8999, whiteHot},
		{0.9, redDwarf},
		{0.99, redDwarf},
	}
	for _, tt := range tests {
		// The jitter draw of the warm band returns 0, pinning green to its minimum.
		got := bandColor(bands, tt.temp, constSampler(0))
		if got != tt.want {
			t.Errorf("temp %v: color = %v, want %v", tt.temp, got, tt.want)
		}
	}
}

func TestGenerateStarsWhiteBlueBranch(t *testing.T) {
	cfg := DefaultConfig().Stars
	cfg.Count = 1
	// theta, phi, radius, brightness, temperature, phase.
	s := script(0.1, 0.2, 0.3, 0.5, 0.75, 0.5)
	m := GenerateStars(cfg, s)[0]

	if m.Color != whiteHot {
		t.Errorf("color = %v, want %v", m.Color, whiteHot)
	}
	if s.n != 6 {
		t.Errorf("draws = %d, want 6 (no jitter outside the warm band)", s.n)
	}
	assertNear(t, "base", m.BaseSize, 0.008+0.65*0.02)
	assertNear(t, "radius", m.Position().Len(), 30+0.3*70)
	assertNear(t, "phase", m.Phase, math.Pi)
}

func TestGenerateStarsWarmJitter(t *testing.T) {
	cfg := DefaultConfig().Stars
	cfg.Count = 1
	s := script(0.1, 0.2, 0.3, 0.5, 0.5, 0.5, 0.25)
	m := GenerateStars(cfg, s)[0]

	assertNear(t, "green", m.Color.G, 0.9)
	assertNear(t, "phase", m.Phase, math.Pi/2)
	if s.n != 7 {
		t.Errorf("draws = %d, want 7", s.n)
	}
}

func TestStarOrbitPreservesRadius(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stars.Radius = Range{50, 50}
	f := newTestField(t, cfg, WithSampler(NewSampler(8)))
	stars := f.Stars()

	heights := make([]float64, stars.Len())
	for i := range heights {
		heights[i] = stars.At(i).Position()[1]
	}

	now := 0.0
	for frame := 0; frame < 2000; frame++ {
		dt := 1.0 / 60
		if frame%100 == 0 {
			dt = 0.1
		}
		now += dt
		f.Advance(now, dt)
	}

	for i := 0; i < stars.Len(); i++ {
		p := stars.At(i).Position()
		if math.Abs(p.Len()-50) > 1e-9 {
			t.Errorf("star %d radius drifted to %v", i, p.Len())
		}
		if p[1] != heights[i] {
			t.Errorf("star %d y changed %v -> %v", i, heights[i], p[1])
		}
	}
}

func TestStarOrbitAccumulates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Flames.Count = 0
	cfg.Backdrop.Count = 0
	cfg.Stars.Count = 1
	cfg.Stars.Radius = Range{40, 40}
	// theta = 0, phi = π/2: the star starts on +X.
	f := newTestField(t, cfg, WithSampler(script(0, 0.5, 0, 0.5, 0.75, 0)))
	m := f.Stars().At(0)

	const steps, dt = 400, 0.5
	for i := 1; i <= steps; i++ {
		f.Advance(float64(i)*dt, dt)
	}

	angle := steps * dt * cfg.Stars.OrbitSpeed
	p := m.Position()
	if math.Abs(p[0]-40*math.Cos(angle)) > 1e-8 || math.Abs(p[2]-40*math.Sin(angle)) > 1e-8 {
		t.Errorf("position %v, want (%v, 0, %v)", p, 40*math.Cos(angle), 40*math.Sin(angle))
	}
}

func TestStarTwinkleBoundsAndStoredBase(t *testing.T) {
	f := newTestField(t, DefaultConfig(), WithSampler(NewSampler(6)))
	stars := f.Stars()
	base := make([]float64, stars.Len())
	for i := range base {
		base[i] = stars.At(i).BaseSize
	}

	const dt = 1.0 / 30
	for frame := 1; frame <= 900; frame++ {
		now := float64(frame) * dt
		f.Advance(now, dt)
		for i := 0; i < stars.Len(); i++ {
			m := stars.At(i)
			want := base[i] * (0.7 + 0.3*math.Sin(now*3+m.Phase))
			if math.Abs(m.Scale()-want) > epsilon {
				t.Fatalf("frame %d star %d scale %v, want %v", frame, i, m.Scale(), want)
			}
			if m.Scale() < 0.4*base[i]-epsilon || m.Scale() > base[i]+epsilon {
				t.Fatalf("frame %d star %d scale outside twinkle bounds", frame, i)
			}
			if m.BaseSize != base[i] {
				t.Fatalf("star %d base size changed", i)
			}
		}
	}
}

func TestStarZeroDeltaFreezesOrbit(t *testing.T) {
	f := newTestField(t, DefaultConfig(), WithSampler(NewSampler(10)))
	before := f.Stars().Members()
	for _, now := range []float64{0, 1, 2.25} {
		f.Advance(now, 0)
	}
	after := f.Stars().Members()
	for i := range before {
		if before[i].Position() != after[i].Position() {
			t.Errorf("star %d moved with dt=0", i)
		}
	}
}
