package chromatics

import "math"

// Determinants smaller than this are treated as zero when inverting.
const matrixDetTolerance = 1e-12

// Matrix3 is a 3x3 matrix in row-major order.
type Matrix3 [3][3]float64

// MulVec returns the matrix-vector product m * (x, y, z).
func (m *Matrix3) MulVec(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// MulXYZ applies the matrix to a tristimulus value.
func (m *Matrix3) MulXYZ(c XYZ) XYZ {
	x, y, z := m.MulVec(c.X, c.Y, c.Z)
	return XYZ{x, y, z}
}

// Inverted returns the inverse of the matrix, computed from cofactors.
// A singular matrix is an error.
func (m *Matrix3) Inverted() (ans Matrix3, err error) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	if math.Abs(det) < matrixDetTolerance {
		return ans, configErrorf("matrix is singular and cannot be inverted")
	}
	invDet := 1 / det
	adj := Matrix3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}
