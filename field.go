package starwake

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Field owns the flame, star and backdrop ensembles of one scene and advances
// them frame by frame.
type Field struct {
	cfg      Config
	sampler  Sampler
	sink     EventSink
	host     Host
	flames   *Ensemble
	stars    *Ensemble
	backdrop *Ensemble

	frame    uint64
	now      float64
	respawns uint64
}

// Option configures a Field at construction.
type Option func(*Field)

// WithSampler sets the sampler used for generation and respawn. The default
// is DefaultSampler.
func WithSampler(s Sampler) Option {
	return func(f *Field) { f.sampler = s }
}

// WithEventSink forwards flame respawns to sink.
func WithEventSink(sink EventSink) Option {
	return func(f *Field) { f.sink = sink }
}

// New validates cfg and generates every ensemble. Flames are generated first,
// then stars, then the backdrop, all from the same sampler.
func New(cfg Config, opts ...Option) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Field{cfg: cfg, sampler: DefaultSampler()}
	for _, opt := range opts {
		opt(f)
	}

	flameRule := &flameMotion{cfg: cfg.Flames, sampler: f.sampler, onRespawn: f.respawned}
	f.flames = newEnsemble(KindFlame, cfg.Flames.Look, GenerateFlames(cfg.Flames, f.sampler), flameRule)
	f.stars = newEnsemble(KindStar, cfg.Stars.Look, GenerateStars(cfg.Stars, f.sampler), &starMotion{cfg: cfg.Stars})
	f.backdrop = newEnsemble(KindBackdrop, cfg.Backdrop.Look, GenerateBackdrop(cfg.Backdrop, f.sampler), nil)
	return f, nil
}

// Config returns the configuration the field was built from.
func (f *Field) Config() Config { return f.cfg }

// Flames returns the flame ensemble.
func (f *Field) Flames() *Ensemble { return f.flames }

// Stars returns the star ensemble.
func (f *Field) Stars() *Ensemble { return f.stars }

// Backdrop returns the static backdrop ensemble.
func (f *Field) Backdrop() *Ensemble { return f.backdrop }

// Ensembles returns every ensemble in update order.
func (f *Field) Ensembles() []*Ensemble {
	return []*Ensemble{f.flames, f.stars, f.backdrop}
}

// Frame returns the number of Advance calls so far.
func (f *Field) Frame() uint64 { return f.frame }

// Time returns the current time passed to the last Advance.
func (f *Field) Time() float64 { return f.now }

// Respawns returns the total number of flame respawns so far.
func (f *Field) Respawns() uint64 { return f.respawns }

// SetEventSink replaces the event sink. Pass nil to stop forwarding.
func (f *Field) SetEventSink(sink EventSink) { f.sink = sink }

// Advance performs one animation step: every flame, then every star. When a
// host is bound the updated transforms are pushed afterwards.
func (f *Field) Advance(now, dt float64) {
	f.frame++
	f.now = now
	f.flames.advance(now, dt)
	f.stars.advance(now, dt)
	if f.host != nil {
		f.Push()
	}
}

// Bind creates one host mesh per member of every ensemble and sets its
// material and initial transform. Binding stops at the first CreateMesh
// failure; members bound before it keep their handles.
func (f *Field) Bind(host Host) error {
	for _, e := range f.Ensembles() {
		for i := range e.members {
			m := &e.members[i]
			h, err := host.CreateMesh(e.look.Template)
			if err != nil {
				return fmt.Errorf("bind %s %d: %w", e.kind, i, err)
			}
			m.handle, m.bound = h, true
			host.SetMaterial(h, e.Material(i))
			host.SetTransform(h, m.Transform)
		}
	}
	f.host = host
	return nil
}

// Push sends the current transform of every bound animated member to the
// host. Advance calls it automatically; the backdrop never changes after
// Bind and is skipped.
func (f *Field) Push() {
	if f.host == nil {
		return
	}
	for _, e := range [...]*Ensemble{f.flames, f.stars} {
		for i := range e.members {
			m := &e.members[i]
			if m.bound {
				f.host.SetTransform(m.handle, m.Transform)
			}
		}
	}
}

func (f *Field) respawned(i int, from, to mgl64.Vec3, now float64) {
	f.respawns++
	if f.sink == nil {
		return
	}
	f.sink.EmitRespawn(RespawnEvent{
		Index: i,
		Frame: f.frame,
		Time:  now,
		From:  from,
		To:    to,
	})
}
