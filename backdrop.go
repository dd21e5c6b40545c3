package starwake

import "github.com/go-gl/mathgl/mgl64"

// GenerateBackdrop produces cfg.Count static billboards. Draws per member are
// x, y, z, phase. The backdrop has no motion rule; the phase is kept so every
// member carries one.
func GenerateBackdrop(cfg BackdropConfig, s Sampler) []Member {
	members := make([]Member, cfg.Count)
	for i := range members {
		pos := mgl64.Vec3{cfg.X.Sample(s), cfg.Y.Sample(s), cfg.Z.Sample(s)}
		members[i] = Member{
			Transform: NewTransform(pos, cfg.Size),
			Phase:     samplePhase(s),
			BaseSize:  cfg.Size,
			Color:     cfg.Color,
		}
	}
	return members
}
