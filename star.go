package starwake

// GenerateStars produces cfg.Count star members. Draws per member are taken in
// the order theta, phi, radius, brightness, temperature, band jitter (only for
// bands whose colors differ), phase.
func GenerateStars(cfg StarConfig, s Sampler) []Member {
	members := make([]Member, cfg.Count)
	for i := range members {
		pos := UniformOnSphere(s, cfg.Radius.Min, cfg.Radius.Max)
		brightness := cfg.Brightness.Sample(s)
		size := cfg.SizeBase + brightness*cfg.SizeGain
		color := starColor(cfg.Bands, s)
		members[i] = Member{
			Transform: NewTransform(pos, size),
			Phase:     samplePhase(s),
			BaseSize:  size,
			Color:     color,
		}
	}
	return members
}

// starColor draws a temperature and returns the color of the first band it
// falls below.
func starColor(bands []ColorBand, s Sampler) Color {
	temp := s.Uniform01()
	return bandColor(bands, temp, s)
}

// bandColor picks the band for temp. Temperatures at or above every threshold
// land in the last band.
func bandColor(bands []ColorBand, temp float64, s Sampler) Color {
	for _, b := range bands {
		if temp < b.Below {
			return b.Color.Sample(s)
		}
	}
	if len(bands) == 0 {
		return ColorWhite
	}
	return bands[len(bands)-1].Color.Sample(s)
}

// starMotion twinkles stars around their base size and turns them slowly
// about the Y axis. The orbit is integrated per frame from dt, so total
// rotation after many frames is OrbitSpeed times the summed deltas.
type starMotion struct {
	cfg StarConfig
}

func (r *starMotion) step(e *Ensemble, i int, now, dt float64) {
	m := &e.members[i]
	t := &m.Transform

	SetUniformScale(t, m.BaseSize*r.cfg.Twinkle.At(now, m.Phase))

	if dt != 0 {
		SetTranslation(t, rotateXZ(Translation(*t), dt*r.cfg.OrbitSpeed))
	}
}
