// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

// Matrices are column-major: MRxC is an array of C column vectors
// of R components each, so the entry at row i, column j lives at
// m[j][i] (flat index i + j*R). Shapes are distinct types and the
// element type is generic; operations between incompatible shapes
// do not compile.

// M2 is a column-major 2x2 matrix.
type M2[T Scalar] [2]V2[T]

// M3 is a column-major 3x3 matrix.
type M3[T Scalar] [3]V3[T]

// M4 is a column-major 4x4 matrix.
type M4[T Scalar] [4]V4[T]

// M2x3 is a column-major 2x3 matrix.
type M2x3[T Scalar] [3]V2[T]

// M2x4 is a column-major 2x4 matrix.
type M2x4[T Scalar] [4]V2[T]

// M3x2 is a column-major 3x2 matrix.
type M3x2[T Scalar] [2]V3[T]

// M3x4 is a column-major 3x4 matrix.
type M3x4[T Scalar] [4]V3[T]

// M4x2 is a column-major 4x2 matrix.
type M4x2[T Scalar] [2]V4[T]

// M4x3 is a column-major 4x3 matrix.
type M4x3[T Scalar] [3]V4[T]

// Ident2 returns a 2x2 identity matrix.
func Ident2[T Scalar]() (m M2[T]) { m.I(); return }

// Ident3 returns a 3x3 identity matrix.
func Ident3[T Scalar]() (m M3[T]) { m.I(); return }

// Ident4 returns a 4x4 identity matrix.
func Ident4[T Scalar]() (m M4[T]) { m.I(); return }

// I makes m an identity matrix.
func (m *M2[T]) I() { *m = M2[T]{{1}, {0, 1}} }

// I makes m an identity matrix.
func (m *M3[T]) I() { *m = M3[T]{{1}, {0, 1}, {0, 0, 1}} }

// I makes m an identity matrix.
func (m *M4[T]) I() { *m = M4[T]{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// I makes m identity-like: ones on the main diagonal, zeros elsewhere.
func (m *M2x3[T]) I() { *m = M2x3[T]{{1}, {0, 1}, {}} }

// I makes m identity-like: ones on the main diagonal, zeros elsewhere.
func (m *M2x4[T]) I() { *m = M2x4[T]{{1}, {0, 1}, {}, {}} }

// I makes m identity-like: ones on the main diagonal, zeros elsewhere.
func (m *M3x2[T]) I() { *m = M3x2[T]{{1}, {0, 1}} }

// I makes m identity-like: ones on the main diagonal, zeros elsewhere.
func (m *M3x4[T]) I() { *m = M3x4[T]{{1}, {0, 1}, {0, 0, 1}, {}} }

// I makes m identity-like: ones on the main diagonal, zeros elsewhere.
func (m *M4x2[T]) I() { *m = M4x2[T]{{1}, {0, 1}} }

// I makes m identity-like: ones on the main diagonal, zeros elsewhere.
func (m *M4x3[T]) I() { *m = M4x3[T]{{1}, {0, 1}, {0, 0, 1}} }

// At returns the entry at row i, column j.
func (m *M2[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M3[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M4[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M2x3[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M2x4[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M3x2[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M3x4[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M4x2[T]) At(i, j int) T { return m[j][i] }

// At returns the entry at row i, column j.
func (m *M4x3[T]) At(i, j int) T { return m[j][i] }

// Set sets the entry at row i, column j to x.
func (m *M2[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M3[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M4[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M2x3[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M2x4[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M3x2[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M3x4[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M4x2[T]) Set(i, j int, x T) { m[j][i] = x }

// Set sets the entry at row i, column j to x.
func (m *M4x3[T]) Set(i, j int, x T) { m[j][i] = x }

// Fill sets every entry of m to x.
func (m *M2[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M3[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M4[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M2x3[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M2x4[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M3x2[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M3x4[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M4x2[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Fill sets every entry of m to x.
func (m *M4x3[T]) Fill(x T) {
	for j := range m {
		m[j].Fill(x)
	}
}

// Zero sets every entry of m to zero.
func (m *M2[T]) Zero() { *m = M2[T]{} }

// Zero sets every entry of m to zero.
func (m *M3[T]) Zero() { *m = M3[T]{} }

// Zero sets every entry of m to zero.
func (m *M4[T]) Zero() { *m = M4[T]{} }

// Zero sets every entry of m to zero.
func (m *M2x3[T]) Zero() { *m = M2x3[T]{} }

// Zero sets every entry of m to zero.
func (m *M2x4[T]) Zero() { *m = M2x4[T]{} }

// Zero sets every entry of m to zero.
func (m *M3x2[T]) Zero() { *m = M3x2[T]{} }

// Zero sets every entry of m to zero.
func (m *M3x4[T]) Zero() { *m = M3x4[T]{} }

// Zero sets every entry of m to zero.
func (m *M4x2[T]) Zero() { *m = M4x2[T]{} }

// Zero sets every entry of m to zero.
func (m *M4x3[T]) Zero() { *m = M4x3[T]{} }

// Add sets m to contain l + r.
func (m *M2[T]) Add(l, r *M2[T]) {
	for j := range m {
		m[j] = AddV2(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M3[T]) Add(l, r *M3[T]) {
	for j := range m {
		m[j] = AddV3(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M4[T]) Add(l, r *M4[T]) {
	for j := range m {
		m[j] = AddV4(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M2x3[T]) Add(l, r *M2x3[T]) {
	for j := range m {
		m[j] = AddV2(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M2x4[T]) Add(l, r *M2x4[T]) {
	for j := range m {
		m[j] = AddV2(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M3x2[T]) Add(l, r *M3x2[T]) {
	for j := range m {
		m[j] = AddV3(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M3x4[T]) Add(l, r *M3x4[T]) {
	for j := range m {
		m[j] = AddV3(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M4x2[T]) Add(l, r *M4x2[T]) {
	for j := range m {
		m[j] = AddV4(l[j], r[j])
	}
}

// Add sets m to contain l + r.
func (m *M4x3[T]) Add(l, r *M4x3[T]) {
	for j := range m {
		m[j] = AddV4(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M2[T]) Sub(l, r *M2[T]) {
	for j := range m {
		m[j] = SubV2(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M3[T]) Sub(l, r *M3[T]) {
	for j := range m {
		m[j] = SubV3(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M4[T]) Sub(l, r *M4[T]) {
	for j := range m {
		m[j] = SubV4(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M2x3[T]) Sub(l, r *M2x3[T]) {
	for j := range m {
		m[j] = SubV2(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M2x4[T]) Sub(l, r *M2x4[T]) {
	for j := range m {
		m[j] = SubV2(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M3x2[T]) Sub(l, r *M3x2[T]) {
	for j := range m {
		m[j] = SubV3(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M3x4[T]) Sub(l, r *M3x4[T]) {
	for j := range m {
		m[j] = SubV3(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M4x2[T]) Sub(l, r *M4x2[T]) {
	for j := range m {
		m[j] = SubV4(l[j], r[j])
	}
}

// Sub sets m to contain l - r.
func (m *M4x3[T]) Sub(l, r *M4x3[T]) {
	for j := range m {
		m[j] = SubV4(l[j], r[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M2[T]) Scale(s float64, n *M2[T]) {
	for j := range m {
		m[j] = ScaleV2(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M3[T]) Scale(s float64, n *M3[T]) {
	for j := range m {
		m[j] = ScaleV3(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M4[T]) Scale(s float64, n *M4[T]) {
	for j := range m {
		m[j] = ScaleV4(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M2x3[T]) Scale(s float64, n *M2x3[T]) {
	for j := range m {
		m[j] = ScaleV2(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M2x4[T]) Scale(s float64, n *M2x4[T]) {
	for j := range m {
		m[j] = ScaleV2(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M3x2[T]) Scale(s float64, n *M3x2[T]) {
	for j := range m {
		m[j] = ScaleV3(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M3x4[T]) Scale(s float64, n *M3x4[T]) {
	for j := range m {
		m[j] = ScaleV3(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M4x2[T]) Scale(s float64, n *M4x2[T]) {
	for j := range m {
		m[j] = ScaleV4(s, n[j])
	}
}

// Scale sets m to contain s ⋅ n.
// The factor is float64 regardless of the element type.
func (m *M4x3[T]) Scale(s float64, n *M4x3[T]) {
	for j := range m {
		m[j] = ScaleV4(s, n[j])
	}
}

// Neg sets m to contain -n.
func (m *M2[T]) Neg(n *M2[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M3[T]) Neg(n *M3[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M4[T]) Neg(n *M4[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M2x3[T]) Neg(n *M2x3[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M2x4[T]) Neg(n *M2x4[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M3x2[T]) Neg(n *M3x2[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M3x4[T]) Neg(n *M3x4[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M4x2[T]) Neg(n *M4x2[T]) { m.Scale(-1, n) }

// Neg sets m to contain -n.
func (m *M4x3[T]) Neg(n *M4x3[T]) { m.Scale(-1, n) }

// Transposed returns the transpose of m.
func (m M2[T]) Transposed() (t M2[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M3[T]) Transposed() (t M3[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M4[T]) Transposed() (t M4[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M2x3[T]) Transposed() (t M3x2[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M2x4[T]) Transposed() (t M4x2[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M3x2[T]) Transposed() (t M2x3[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M3x4[T]) Transposed() (t M4x3[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M4x2[T]) Transposed() (t M2x4[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Transposed returns the transpose of m.
func (m M4x3[T]) Transposed() (t M3x4[T]) {
	for j := range m {
		for i := range m[j] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Mul sets m to contain l ⋅ r.
func (m *M2[T]) Mul(l, r *M2[T]) {
	a, b := *l, *r
	*m = M2[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r.
func (m *M3[T]) Mul(l, r *M3[T]) {
	a, b := *l, *r
	*m = M3[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r.
func (m *M4[T]) Mul(l, r *M4[T]) {
	a, b := *l, *r
	*m = M4[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r ([2x2]⋅[2x3] = [2x3]).
func (m *M2x3[T]) Mul(l *M2[T], r *M2x3[T]) {
	a, b := *l, *r
	*m = M2x3[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r ([2x2]⋅[2x4] = [2x4]).
func (m *M2x4[T]) Mul(l *M2[T], r *M2x4[T]) {
	a, b := *l, *r
	*m = M2x4[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r ([3x3]⋅[3x2] = [3x2]).
func (m *M3x2[T]) Mul(l *M3[T], r *M3x2[T]) {
	a, b := *l, *r
	*m = M3x2[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r ([3x3]⋅[3x4] = [3x4]).
func (m *M3x4[T]) Mul(l *M3[T], r *M3x4[T]) {
	a, b := *l, *r
	*m = M3x4[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r ([4x4]⋅[4x2] = [4x2]).
func (m *M4x2[T]) Mul(l *M4[T], r *M4x2[T]) {
	a, b := *l, *r
	*m = M4x2[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets m to contain l ⋅ r ([4x4]⋅[4x3] = [4x3]).
func (m *M4x3[T]) Mul(l *M4[T], r *M4x3[T]) {
	a, b := *l, *r
	*m = M4x3[T]{}
	for i := range m {
		for j := range m[i] {
			for k := range a {
				m[i][j] += a[k][j] * b[i][k]
			}
		}
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V2[T]) Mul(m *M2[T], w *V2[T]) {
	var u V2[T]
	for i := range m {
		for j := range m[i] {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// Mul sets v to contain m ⋅ w.
func (v *V3[T]) Mul(m *M3[T], w *V3[T]) {
	var u V3[T]
	for i := range m {
		for j := range m[i] {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// Mul sets v to contain m ⋅ w.
func (v *V4[T]) Mul(m *M4[T], w *V4[T]) {
	var u V4[T]
	for i := range m {
		for j := range m[i] {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// MulM3x4 sets v to contain m ⋅ w ([3x4]⋅[4x1] = [3x1]).
func (v *V3[T]) MulM3x4(m *M3x4[T], w *V4[T]) {
	var u V3[T]
	for i := range m {
		for j := range m[i] {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// MulM4x3 sets v to contain m ⋅ w ([4x3]⋅[3x1] = [4x1]).
func (v *V4[T]) MulM4x3(m *M4x3[T], w *V3[T]) {
	var u V4[T]
	for i := range m {
		for j := range m[i] {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// String returns m in the [a b; c d;] format.
func (m M2[T]) String() string { return format(2, 2, m.At) }

// String returns m in the [a b c; ...;] format.
func (m M3[T]) String() string { return format(3, 3, m.At) }

// String returns m in the [a b c d; ...;] format.
func (m M4[T]) String() string { return format(4, 4, m.At) }

// String returns m in the [a b c; d e f;] format.
func (m M2x3[T]) String() string { return format(2, 3, m.At) }

// String returns m in the [a b c d; e f g h;] format.
func (m M2x4[T]) String() string { return format(2, 4, m.At) }

// String returns m in the [a b; c d; e f;] format.
func (m M3x2[T]) String() string { return format(3, 2, m.At) }

// String returns m in the [a b c d; ...;] format.
func (m M3x4[T]) String() string { return format(3, 4, m.At) }

// String returns m in the [a b; c d; e f; g h;] format.
func (m M4x2[T]) String() string { return format(4, 2, m.At) }

// String returns m in the [a b c; ...;] format.
func (m M4x3[T]) String() string { return format(4, 3, m.At) }
