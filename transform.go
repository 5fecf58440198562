// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

// TranslationM4 returns the matrix translating by (x, y, z).
func TranslationM4[T Scalar](x, y, z T) (m M4[T]) {
	m.I()
	m[3] = V4[T]{x, y, z, 1}
	return
}

// ScalingM4 returns the matrix scaling by (x, y, z).
func ScalingM4[T Scalar](x, y, z T) (m M4[T]) {
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	m[3][3] = 1
	return
}

// RotateQ sets m to the rotation matrix of q,
// which must be normalized.
func (m *M3[T]) RotateQ(q *Q[T]) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	m[0] = V3[T]{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y)}
	m[1] = V3[T]{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x)}
	m[2] = V3[T]{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y)}
}

// RotateQ sets m to the rotation matrix of q,
// which must be normalized.
func (m *M4[T]) RotateQ(q *Q[T]) {
	var r M3[T]
	r.RotateQ(q)
	*m = M4[T]{
		{r[0][0], r[0][1], r[0][2], 0},
		{r[1][0], r[1][1], r[1][2], 0},
		{r[2][0], r[2][1], r[2][2], 0},
		{0, 0, 0, 1},
	}
}
