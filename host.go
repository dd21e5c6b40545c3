package starwake

import "github.com/go-gl/mathgl/mgl64"

// TemplateQuad is the mesh template name used for billboards.
const TemplateQuad = "quad"

// MeshHandle identifies a renderable instance owned by a Host.
type MeshHandle uint32

// Material holds the per-instance shading coefficients and the host-side
// resources an instance is drawn with.
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Shininess float64
	Texture   string
	Shader    string
}

// Host is the scene/rendering side a Field feeds. Implementations are called
// from the frame loop only.
type Host interface {
	// CreateMesh obtains a new instance of the named template. An error here
	// means no member can be created and binding is aborted.
	CreateMesh(template string) (MeshHandle, error)
	// SetMaterial sets the instance's shading coefficients.
	SetMaterial(h MeshHandle, m Material)
	// SetTransform pushes the instance's current model matrix.
	SetTransform(h MeshHandle, m mgl64.Mat4)
}
