package starwake

import "github.com/go-gl/mathgl/mgl64"

// GenerateFlames produces cfg.Count flame members. Draws per member are taken
// in the order x, y, z, phase, color.
//
// Base size grows with the distance behind the engine mouth (X.Max), so a
// flame's size is a function of where it starts rather than a draw of its own.
func GenerateFlames(cfg FlameConfig, s Sampler) []Member {
	members := make([]Member, cfg.Count)
	for i := range members {
		pos := mgl64.Vec3{cfg.X.Sample(s), cfg.Y.Sample(s), cfg.Z.Sample(s)}
		size := cfg.SizeBase + cfg.SizeGrowth*(cfg.X.Max-pos[0])
		members[i] = Member{
			Transform: NewTransform(pos, size),
			Phase:     samplePhase(s),
			BaseSize:  size,
			Color:     cfg.Color.Sample(s),
		}
	}
	return members
}

// flameMotion drifts flames toward -X, pulses their size, and recycles them
// at the engine mouth once they cross the reset plane.
type flameMotion struct {
	cfg       FlameConfig
	sampler   Sampler
	onRespawn func(i int, from, to mgl64.Vec3, now float64)
}

func (r *flameMotion) step(e *Ensemble, i int, now, dt float64) {
	m := &e.members[i]
	t := &m.Transform

	t[12] -= dt * r.cfg.DriftSpeed

	SetUniformScale(t, m.BaseSize*r.cfg.Pulse.At(now, m.Phase))

	if t[12] < r.cfg.ResetX {
		from := Translation(*t)
		to := mgl64.Vec3{r.cfg.RespawnX, r.cfg.Y.Sample(r.sampler), r.cfg.Z.Sample(r.sampler)}
		SetTranslation(t, to)
		if r.onRespawn != nil {
			r.onRespawn(i, from, to, now)
		}
	}
}
