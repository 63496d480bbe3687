package tapmap

import "math"

// identityTransform is the identity affine matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// invertAffineInto writes the inverse of m into dst and reports whether m was
// invertible. A singular or non-finite m leaves the identity in dst.
func invertAffineInto(dst *[6]float64, m *[6]float64) bool {
	det := m[0]*m[3] - m[2]*m[1]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		*dst = identityTransform
		return false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	dst[0], dst[1], dst[2], dst[3] = a, b, c, d
	dst[4] = -(a*m[4] + c*m[5])
	dst[5] = -(b*m[4] + d*m[5])
	return true
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m *[6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
