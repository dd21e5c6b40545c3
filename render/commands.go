package render

import "github.com/phanxgames/starwake"

// minRadius is the smallest on-screen radius in pixels; distant stars stay
// visible as a single bright dot.
const minRadius = 1.2

// drawCommand is one projected mesh instance ready for drawing.
type drawCommand struct {
	template string
	x, y     float32
	radius   float32
	depth    float64
	color    starwake.Color
	order    int // host index, for stable sort
}

// commandBuffer builds and sorts draw commands, reusing its slices between
// frames.
type commandBuffer struct {
	commands []drawCommand
	sortBuf  []drawCommand
	culled   int
}

// build projects every host instance through the camera onto a w x h target.
// Instances behind the near plane or past the far plane are culled.
func (b *commandBuffer) build(h *Host, cam *Camera, w, hgt int) []drawCommand {
	b.commands = b.commands[:0]
	b.culled = 0
	viewProj := cam.Projection(w, hgt).Mul4(cam.View())
	for i := range h.meshes {
		ms := &h.meshes[i]
		pos := starwake.Translation(ms.transform)
		x, y, depth, ok := project(viewProj, pos, w, hgt, cam.Near, cam.Far)
		if !ok {
			b.culled++
			continue
		}
		r := starwake.UniformScale(ms.transform) * cam.PixelsPerUnit(depth, hgt)
		if ms.template == TemplateQuad {
			// the glow texture fades to zero well inside its edge
			r *= 2
		}
		b.commands = append(b.commands, drawCommand{
			template: ms.template,
			x:        float32(x),
			y:        float32(y),
			radius:   float32(max(r, minRadius)),
			depth:    depth,
			color:    ms.material.Diffuse,
			order:    i,
		})
	}
	b.mergeSort()
	return b.commands
}

// commandLessOrEqual reports whether a draws before or at the same position
// as b: farther first, then in host order.
func commandLessOrEqual(a, b *drawCommand) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// mergeSort sorts b.commands in place using b.sortBuf as scratch space.
func (b *commandBuffer) mergeSort() {
	n := len(b.commands)
	if n <= 1 {
		return
	}
	if cap(b.sortBuf) < n {
		b.sortBuf = make([]drawCommand, n)
	}
	b.sortBuf = b.sortBuf[:n]

	src, dst := b.commands, b.sortBuf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(src, dst, lo, mid, hi)
		}
		src, dst = dst, src
		swapped = !swapped
	}
	if swapped {
		copy(b.commands, b.sortBuf)
	}
}

// mergeRun merges the sorted runs [lo, mid) and [mid, hi) of src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
