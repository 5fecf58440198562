// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import "fmt"

// Q is a quaternion: q.R + q.V[0]⋅i + q.V[1]⋅j + q.V[2]⋅k.
//
// The scalar/vector split is the working representation: the Hamilton
// product, conjugation, rotation transform and the exponential map all
// factor through it. Rotation operations require a unit quaternion;
// the norm is not maintained automatically, so callers must normalize
// after operations that drift (repeated multiplication, integration).
type Q[T Scalar] struct {
	V V3[T]
	R T
}

// IdentQ returns the identity quaternion (1, (0,0,0)).
func IdentQ[T Scalar]() Q[T] { return Q[T]{R: 1} }

// Rotate makes q the rotation of angle radians about axis.
// The axis must be normalized.
func (q *Q[T]) Rotate(angle T, axis *V3[T]) {
	s := sin(angle / 2)
	q.R = cos(angle / 2)
	q.V = ScaleV3(float64(s), *axis)
}

// AxisAngle returns the axis/angle representation of q,
// which must be normalized. When the scalar part overshoots
// 1 numerically, the axis degenerates to (1,0,0) with angle 0.
func (q *Q[T]) AxisAngle() (axis V3[T], angle T) {
	rr := q.R * q.R
	if rr > 1 {
		axis = V3[T]{1, 0, 0}
		return
	}
	angle = 2 * acos(q.R)
	axis = ScaleV3(float64(1/sqrt(1-rr)), q.V)
	return
}

// Conjugated returns the conjugate of q.
func (q Q[T]) Conjugated() Q[T] { return Q[T]{V: NegV3(q.V), R: q.R} }

// Conjugate sets q to its conjugate.
func (q *Q[T]) Conjugate() { q.V = NegV3(q.V) }

// DotQ returns p ⋅ q.
func DotQ[T Scalar](p, q Q[T]) T { return p.R*q.R + DotV3(p.V, q.V) }

// Len2 returns the squared length of q.
func (q Q[T]) Len2() T { return DotQ(q, q) }

// Len returns the length of q.
func (q Q[T]) Len() T { return sqrt(q.Len2()) }

// Normalized returns q scaled to unit length.
func (q Q[T]) Normalized() Q[T] {
	l := q.Len()
	return Q[T]{V: ScaleV3(float64(1/l), q.V), R: q.R / l}
}

// Normalize scales q in place to unit length.
func (q *Q[T]) Normalize() { *q = q.Normalized() }

// Inverse returns the inverse of q.
// For a unit quaternion this equals the conjugate; the general
// formula conj(q)/|q|² holds for non-unit quaternions as well.
func (q Q[T]) Inverse() Q[T] { return ScaleQ(1/q.Len2(), q.Conjugated()) }

// Invert sets q to its inverse.
func (q *Q[T]) Invert() { *q = q.Inverse() }

// Mul sets q to contain the Hamilton product l ⋅ r.
func (q *Q[T]) Mul(l, r *Q[T]) {
	a, b := *l, *r
	v := ScaleV3(float64(b.R), a.V)
	w := ScaleV3(float64(a.R), b.V)
	v = AddV3(v, w)
	w = Cross(a.V, b.V)
	d := DotV3(a.V, b.V)
	q.V = AddV3(v, w)
	q.R = a.R*b.R - d
}

// MulQ returns the Hamilton product p ⋅ q.
func MulQ[T Scalar](p, q Q[T]) (u Q[T]) {
	u.Mul(&p, &q)
	return
}

// ScaleQ returns n ⋅ q.
func ScaleQ[T Scalar](n T, q Q[T]) Q[T] {
	return Q[T]{V: ScaleV3(float64(n), q.V), R: n * q.R}
}

// AddQ returns the componentwise sum p + q.
func AddQ[T Scalar](p, q Q[T]) Q[T] {
	return Q[T]{V: AddV3(p.V, q.V), R: p.R + q.R}
}

// SubQ returns the componentwise difference p - q.
func SubQ[T Scalar](p, q Q[T]) Q[T] {
	return Q[T]{V: SubV3(p.V, q.V), R: p.R - q.R}
}

// Transform returns v rotated by q, which must be normalized.
// It expands the sandwich product q⋅v⋅q* in closed form:
//
//	2⋅qv⋅(qv⋅v) - v⋅|qv|² + r²⋅v + 2⋅r⋅(qv × v)
func (q Q[T]) Transform(v V3[T]) V3[T] {
	u := ScaleV3(2*float64(DotV3(q.V, v)), q.V)
	u = SubV3(u, ScaleV3(float64(Len2V3(q.V)), v))
	u = AddV3(u, ScaleV3(float64(q.R*q.R), v))
	return AddV3(u, ScaleV3(2*float64(q.R), Cross(q.V, v)))
}

// LogQ returns the logarithm of p.
// A zero vector part divides by zero and the resulting
// non-finite components propagate.
func LogQ[T Scalar](p Q[T]) Q[T] {
	lq := p.Len()
	lv := LenV3(p.V)
	a := acos(p.R/lq) / lv
	return Q[T]{V: ScaleV3(float64(a), p.V), R: ln(lq)}
}

// ExpQ returns the exponential of p.
// A zero vector part divides by zero and the resulting
// non-finite components propagate.
func ExpQ[T Scalar](p Q[T]) Q[T] {
	lv := LenV3(p.V)
	s := sin(lv) / lv
	return ScaleQ(exp(p.R), Q[T]{V: ScaleV3(float64(s), p.V), R: cos(lv)})
}

// PowQ returns p raised to the power t: exp(t ⋅ log p).
func PowQ[T Scalar](p Q[T], t T) Q[T] { return ExpQ(ScaleQ(t, LogQ(p))) }

// ComposeQ returns the SO(3) group addition p ⋅ exp(q/2),
// treating q as a tangent-space increment.
func ComposeQ[T Scalar](p, q Q[T]) Q[T] {
	return MulQ(p, ExpQ(ScaleQ(0.5, q)))
}

// DiffQ returns the SO(3) group difference 2 ⋅ log(q⁻¹ ⋅ p).
func DiffQ[T Scalar](p, q Q[T]) Q[T] {
	return ScaleQ(2, LogQ(MulQ(q.Inverse(), p)))
}

// SlerpQ interpolates between the rotations p and q.
// It is defined through the group operators, not the classical
// sine-weighted formula: ComposeQ(p, t ⋅ DiffQ(q, p)). At t = 0
// the increment has a zero vector part and ExpQ degenerates.
func SlerpQ[T Scalar](p, q Q[T], t T) Q[T] {
	return ComposeQ(p, ScaleQ(t, DiffQ(q, p)))
}

// String returns q in the [r;x;y;z;] format.
func (q Q[T]) String() string {
	return fmt.Sprintf("[%v;%v;%v;%v;]", q.R, q.V[0], q.V[1], q.V[2])
}
