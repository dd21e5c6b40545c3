// Package render draws a starwake.Field with Ebitengine.
//
// Host implements starwake.Host by keeping every instance in memory. Scene
// is an ebiten.Game that ticks a FrameClock, advances the field and
// projects each instance through an orbit Camera:
//
//	field, _ := starwake.New(starwake.DefaultConfig())
//	scene, err := render.NewScene(field, render.SceneOptions{FlyIn: true})
//	if err != nil {
//		return err
//	}
//	return render.Run(scene, render.RunConfig{Title: "starwake"})
//
// Quads draw as additive glow billboards, spheres as filled discs and the
// ship as a stroked hull. Draw order is far to near.
//
// # Controls
//
//   - Space pauses the animation
//   - F toggles the FPS overlay
//   - P saves a screenshot
//   - Arrow keys and left-drag orbit the camera
//   - Wheel, + and - zoom
//   - Escape quits
package render
