package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/starwake"
)

// Mesh templates understood by Host.
const (
	TemplateQuad   = starwake.TemplateQuad // additive glow billboard
	TemplateSphere = "sphere"              // shaded disc
	TemplateShip   = "ship"                // hull stroke with canopy
)

// ErrUnknownTemplate is returned by CreateMesh for template names the host
// cannot draw.
var ErrUnknownTemplate = errors.New("unknown mesh template")

// mesh is one renderable instance.
type mesh struct {
	template  string
	material  starwake.Material
	transform mgl64.Mat4
}

// Host is an in-memory starwake.Host. It stores instances and their latest
// transforms; Scene turns them into draw calls every frame.
type Host struct {
	meshes []mesh
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{}
}

// CreateMesh allocates an instance of template. Handles start at 1.
func (h *Host) CreateMesh(template string) (starwake.MeshHandle, error) {
	switch template {
	case TemplateQuad, TemplateSphere, TemplateShip:
	default:
		return 0, fmt.Errorf("create mesh %q: %w", template, ErrUnknownTemplate)
	}
	h.meshes = append(h.meshes, mesh{template: template, transform: mgl64.Ident4()})
	return starwake.MeshHandle(len(h.meshes)), nil
}

// SetMaterial sets the material of instance id. Unknown handles are ignored.
func (h *Host) SetMaterial(id starwake.MeshHandle, m starwake.Material) {
	if ms := h.lookup(id); ms != nil {
		ms.material = m
	}
}

// SetTransform sets the model matrix of instance id. Unknown handles are
// ignored.
func (h *Host) SetTransform(id starwake.MeshHandle, m mgl64.Mat4) {
	if ms := h.lookup(id); ms != nil {
		ms.transform = m
	}
}

// Len returns the number of instances.
func (h *Host) Len() int {
	return len(h.meshes)
}

// Transform returns the latest transform of instance id.
func (h *Host) Transform(id starwake.MeshHandle) (mgl64.Mat4, bool) {
	ms := h.lookup(id)
	if ms == nil {
		return mgl64.Mat4{}, false
	}
	return ms.transform, true
}

// Material returns the material of instance id.
func (h *Host) Material(id starwake.MeshHandle) (starwake.Material, bool) {
	ms := h.lookup(id)
	if ms == nil {
		return starwake.Material{}, false
	}
	return ms.material, true
}

func (h *Host) lookup(id starwake.MeshHandle) *mesh {
	i := int(id) - 1
	if i < 0 || i >= len(h.meshes) {
		return nil
	}
	return &h.meshes[i]
}
