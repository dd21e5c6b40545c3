package starwake

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Member transforms are mgl64.Mat4 values (column-major). Only the diagonal
// of the upper-left 3x3 and the translation column are ever written:
//
//	| s  0  0  tx |
//	| 0  s  0  ty |
//	| 0  0  s  tz |
//	| 0  0  0  1  |

// NewTransform builds a uniform-scale then translate matrix.
func NewTransform(pos mgl64.Vec3, size float64) mgl64.Mat4 {
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl64.Scale3D(size, size, size))
}

// Translation returns the translation column of m.
func Translation(m mgl64.Mat4) mgl64.Vec3 {
	return mgl64.Vec3{m[12], m[13], m[14]}
}

// SetTranslation overwrites the translation column of m.
func SetTranslation(m *mgl64.Mat4, p mgl64.Vec3) {
	m[12], m[13], m[14] = p[0], p[1], p[2]
}

// UniformScale returns the scale of a uniform-scale transform.
func UniformScale(m mgl64.Mat4) float64 {
	return m[0]
}

// SetUniformScale writes s to all three diagonal scale entries.
func SetUniformScale(m *mgl64.Mat4, s float64) {
	m[0], m[5], m[10] = s, s, s
}

// IsScaleTranslate reports whether m is a positive uniform scale followed by a
// translation, within eps. Any rotation, shear, non-uniform scale or
// projective row fails the check.
func IsScaleTranslate(m mgl64.Mat4, eps float64) bool {
	s := m[0]
	if s <= 0 {
		return false
	}
	if math.Abs(m[5]-s) > eps || math.Abs(m[10]-s) > eps {
		return false
	}
	// Off-diagonal entries of the 3x3 block and the bottom row.
	for _, i := range [...]int{1, 2, 3, 4, 6, 7, 8, 9, 11} {
		if math.Abs(m[i]) > eps {
			return false
		}
	}
	return math.Abs(m[15]-1) <= eps
}

// rotateXZ rotates p about the Y axis by angle radians:
//
//	x' = x cos a - z sin a
//	z' = x sin a + z cos a
func rotateXZ(p mgl64.Vec3, angle float64) mgl64.Vec3 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec3{
		p[0]*cos - p[2]*sin,
		p[1],
		p[0]*sin + p[2]*cos,
	}
}
