// Package ecs provides ECS adapters for starwake.
package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/starwake"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// RespawnEventType is the Donburi event type for flame respawns.
// Subscribe to this in your ECS systems to react to recycled flames.
var RespawnEventType = events.NewEventType[starwake.RespawnEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Respawn events are published to RespawnEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) starwake.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitRespawn(event starwake.RespawnEvent) {
	RespawnEventType.Publish(s.world, event)
}

// MemberData mirrors one ensemble member inside a Donburi world.
type MemberData struct {
	Kind      starwake.Kind
	Index     int
	Transform mgl64.Mat4
	Color     starwake.Color
}

// Member is the component type carried by every mirrored member entity.
var Member = donburi.NewComponentType[MemberData]()

// Members matches every mirrored member entity.
var Members = donburi.NewQuery(filter.Contains(Member))

// Mirror keeps one entity per field member in sync with the field. Create it
// once after the field is built and call Sync after every Advance.
type Mirror struct {
	world    donburi.World
	entities [][]donburi.Entity // per ensemble, per member
}

// NewMirror creates one entity per member of every ensemble in field.
func NewMirror(world donburi.World, field *starwake.Field) *Mirror {
	m := &Mirror{world: world}
	for _, e := range field.Ensembles() {
		ids := make([]donburi.Entity, e.Len())
		for i := range ids {
			ids[i] = world.Create(Member)
			src := e.At(i)
			Member.SetValue(world.Entry(ids[i]), MemberData{
				Kind:      e.Kind(),
				Index:     i,
				Transform: src.Transform,
				Color:     src.Color,
			})
		}
		m.entities = append(m.entities, ids)
	}
	return m
}

// Sync copies the current transforms of field into the mirrored entities.
// Entities removed from the world by a system are skipped.
func (m *Mirror) Sync(field *starwake.Field) {
	for k, e := range field.Ensembles() {
		if k >= len(m.entities) {
			return
		}
		ids := m.entities[k]
		for i := 0; i < e.Len() && i < len(ids); i++ {
			if !m.world.Valid(ids[i]) {
				continue
			}
			Member.Get(m.world.Entry(ids[i])).Transform = e.At(i).Transform
		}
	}
}

// Entity returns the entity mirroring member i of the given kind.
func (m *Mirror) Entity(kind starwake.Kind, i int) (donburi.Entity, bool) {
	k := int(kind)
	if k >= len(m.entities) || i < 0 || i >= len(m.entities[k]) {
		var none donburi.Entity
		return none, false
	}
	return m.entities[k][i], true
}
