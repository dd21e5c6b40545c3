package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/starwake"
)

// Prop is a static scene body: placed once, never animated.
type Prop struct {
	Name     string
	Template string
	Position mgl64.Vec3
	Scale    float64
	Material starwake.Material
}

// DefaultProps returns the bodies surrounding the flame trail and the
// starfield: the ship, two planets, two asteroids and the sun.
func DefaultProps() []Prop {
	return []Prop{
		{
			Name: "spaceship", Template: TemplateShip, Scale: 0.3,
			Material: starwake.Material{
				Ambient: grey(0.1), Diffuse: grey(0.7), Specular: grey(0.5), Shininess: 32,
				Texture: "metal_color", Shader: "spaceship",
			},
		},
		{
			Name: "earth", Template: TemplateSphere, Position: mgl64.Vec3{4, 0, -3}, Scale: 1,
			Material: starwake.Material{
				Ambient: grey(0.1), Diffuse: starwake.Color{R: 0.2, G: 0.4, B: 0.8}, Specular: grey(0.3), Shininess: 32,
				Texture: "earth", Shader: "planet",
			},
		},
		{
			Name: "lava", Template: TemplateSphere, Position: mgl64.Vec3{-3.5, 1, -6}, Scale: 0.7,
			Material: starwake.Material{
				Ambient:  starwake.Color{R: 0.15, G: 0.1, B: 0.05},
				Diffuse:  starwake.Color{R: 0.9, G: 0.5, B: 0.2},
				Specular: starwake.Color{R: 0.4, G: 0.2, B: 0.1}, Shininess: 24,
				Texture: "lava", Shader: "planet",
			},
		},
		{
			Name: "asteroid", Template: TemplateSphere, Position: mgl64.Vec3{2, 1.5, 3}, Scale: 0.2,
			Material: starwake.Material{
				Ambient: grey(0.1), Diffuse: grey(0.5), Specular: grey(0.2), Shininess: 8,
				Texture: "asteroidone", Shader: "planet",
			},
		},
		{
			Name: "asteroid2", Template: TemplateSphere, Position: mgl64.Vec3{-2.5, -1.5, 2.5}, Scale: 0.15,
			Material: starwake.Material{
				Ambient: grey(0.1), Diffuse: grey(0.4), Specular: grey(0.1), Shininess: 6,
				Texture: "asteroidtwo", Shader: "planet",
			},
		},
		{
			Name: "sun", Template: TemplateSphere, Position: mgl64.Vec3{0, 2, -10}, Scale: 2,
			Material: starwake.Material{
				Ambient:  starwake.Color{R: 0.2, G: 0.15, B: 0.05},
				Diffuse:  starwake.Color{R: 1.0, G: 0.8, B: 0.3},
				Specular: starwake.Color{R: 1.0, G: 0.9, B: 0.5}, Shininess: 64,
				Texture: "sun", Shader: "planet",
			},
		},
	}
}

// BindProps creates one host instance per prop.
func BindProps(host starwake.Host, props []Prop) ([]starwake.MeshHandle, error) {
	handles := make([]starwake.MeshHandle, 0, len(props))
	for _, p := range props {
		h, err := host.CreateMesh(p.Template)
		if err != nil {
			return handles, fmt.Errorf("bind prop %s: %w", p.Name, err)
		}
		host.SetMaterial(h, p.Material)
		host.SetTransform(h, starwake.NewTransform(p.Position, p.Scale))
		handles = append(handles, h)
	}
	return handles, nil
}

func grey(v float64) starwake.Color {
	return starwake.Color{R: v, G: v, B: v}
}
