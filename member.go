package starwake

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies which ensemble a member belongs to.
type Kind uint8

const (
	KindFlame    Kind = iota // engine exhaust billboard
	KindStar                 // twinkling, orbiting star
	KindBackdrop             // static background billboard
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFlame:
		return "flame"
	case KindStar:
		return "star"
	case KindBackdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}

// Member is one billboard of an ensemble. Only Transform changes after
// generation.
type Member struct {
	// Transform is a positive uniform scale followed by a translation.
	Transform mgl64.Mat4
	// Phase desynchronizes periodic motion across members, in [0, 2π).
	Phase float64
	// BaseSize is the scale before time-varying modulation.
	BaseSize float64
	Color    Color

	handle MeshHandle
	bound  bool
}

// Position returns the member's translation.
func (m *Member) Position() mgl64.Vec3 {
	return Translation(m.Transform)
}

// Scale returns the member's current uniform scale.
func (m *Member) Scale() float64 {
	return UniformScale(m.Transform)
}

// Handle returns the host mesh handle and whether the member has been bound.
func (m *Member) Handle() (MeshHandle, bool) {
	return m.handle, m.bound
}

// motion is a per-frame update rule for one ensemble.
type motion interface {
	step(e *Ensemble, i int, now, dt float64)
}

// Ensemble is a fixed-length, ordered set of members of one Kind.
type Ensemble struct {
	kind    Kind
	look    Look
	members []Member
	rule    motion
}

func newEnsemble(kind Kind, look Look, members []Member, rule motion) *Ensemble {
	return &Ensemble{kind: kind, look: look, members: members, rule: rule}
}

// Kind returns the ensemble kind.
func (e *Ensemble) Kind() Kind { return e.kind }

// Look returns the render description used when binding members.
func (e *Ensemble) Look() Look { return e.look }

// Len returns the number of members. It never changes.
func (e *Ensemble) Len() int { return len(e.members) }

// At returns a pointer to member i. The pointer stays valid for the lifetime
// of the ensemble; callers must not modify Phase, BaseSize or Color.
func (e *Ensemble) At(i int) *Member { return &e.members[i] }

// Members returns a copy of the member records.
func (e *Ensemble) Members() []Member {
	out := make([]Member, len(e.members))
	copy(out, e.members)
	return out
}

// Material returns the host material for member i.
func (e *Ensemble) Material(i int) Material {
	c := e.members[i].Color
	return Material{
		Ambient:   c.Scale(e.look.AmbientGain),
		Diffuse:   c,
		Specular:  c.Scale(e.look.SpecularGain),
		Shininess: e.look.Shininess,
		Texture:   e.look.Texture,
		Shader:    e.look.Shader,
	}
}

// advance applies the ensemble's motion rule to every member in index order.
func (e *Ensemble) advance(now, dt float64) {
	if e.rule == nil {
		return
	}
	for i := range e.members {
		e.rule.step(e, i, now, dt)
	}
}
