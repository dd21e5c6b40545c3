// Package starwake generates and animates the engine-flame trail and the
// starfield of a small 3D space scene.
//
// Every ensemble member is a 4x4 affine transform (uniform scale plus
// translation, never rotation) together with the few parameters that drive
// its motion. Rendering is somebody else's job: a [Host] receives one mesh
// per member and a fresh transform every frame. The [render] package ships
// an Ebitengine host; the [ecs] package bridges events into a Donburi world.
//
// # Quick start
//
//	field, err := starwake.New(starwake.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := field.Bind(host); err != nil {
//		log.Fatal(err)
//	}
//	clock := starwake.NewFrameClock(starwake.DefaultConfig().Clock)
//
//	// once per frame:
//	now, dt := clock.Tick()
//	field.Advance(now, dt)
//
// # Ensembles
//
// Three ensembles are generated when a [Field] is created:
//
//   - flames: billboards behind the ship's engine. They drift backward along
//     -X, pulse in size, and respawn at the engine mouth once they pass the
//     reset plane.
//   - stars: billboards scattered in a spherical shell. They twinkle and
//     orbit the Y axis very slowly.
//   - backdrop: a handful of static billboards behind the scene.
//
// Ensembles never grow or shrink. Only member transforms change after
// generation.
//
// # Randomness
//
// Generation and respawn draw from a [Sampler]. [DefaultSampler] uses the
// process-wide generator; [NewSampler] returns a seeded one for reproducible
// runs, and tests may supply any scripted implementation via [WithSampler].
//
// # Time
//
// [FrameClock] converts wall-clock time into (now, dt) pairs. A frame that
// arrives more than [ClockConfig.MaxStep] after the previous one is treated
// as a stall and advanced by [ClockConfig.NominalStep] instead, so resuming
// from a pause does not fling every flame past the reset plane.
//
// [render]: https://pkg.go.dev/github.com/phanxgames/starwake/render
// [ecs]: https://pkg.go.dev/github.com/phanxgames/starwake/ecs
package starwake
