// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

// V2 is a 2-component column vector.
// It is structurally a 2x1 matrix stored as its own column.
type V2[T Scalar] [2]T

// V3 is a 3-component column vector.
// It is structurally a 3x1 matrix stored as its own column.
type V3[T Scalar] [3]T

// V4 is a 4-component column vector.
// It is structurally a 4x1 matrix stored as its own column.
type V4[T Scalar] [4]T

// AddV2 returns v + w.
func AddV2[T Scalar](v, w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// AddV3 returns v + w.
func AddV3[T Scalar](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// AddV4 returns v + w.
func AddV4[T Scalar](v, w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV2 returns v - w.
func SubV2[T Scalar](v, w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3[T Scalar](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// SubV4 returns v - w.
func SubV4[T Scalar](v, w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV2 returns s ⋅ v.
// The factor is float64 regardless of the element type.
func ScaleV2[T Scalar](s float64, v V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = T(s * float64(v[i]))
	}
	return
}

// ScaleV3 returns s ⋅ v.
// The factor is float64 regardless of the element type.
func ScaleV3[T Scalar](s float64, v V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = T(s * float64(v[i]))
	}
	return
}

// ScaleV4 returns s ⋅ v.
// The factor is float64 regardless of the element type.
func ScaleV4[T Scalar](s float64, v V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = T(s * float64(v[i]))
	}
	return
}

// NegV2 returns -v.
func NegV2[T Scalar](v V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// NegV3 returns -v.
func NegV3[T Scalar](v V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// NegV4 returns -v.
func NegV4[T Scalar](v V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// DotV2 returns v ⋅ w.
func DotV2[T Scalar](v, w V2[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3[T Scalar](v, w V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// DotV4 returns v ⋅ w.
func DotV4[T Scalar](v, w V4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len2V2 returns the squared length of v.
func Len2V2[T Scalar](v V2[T]) T { return DotV2(v, v) }

// Len2V3 returns the squared length of v.
func Len2V3[T Scalar](v V3[T]) T { return DotV3(v, v) }

// Len2V4 returns the squared length of v.
func Len2V4[T Scalar](v V4[T]) T { return DotV4(v, v) }

// LenV2 returns the length of v.
func LenV2[T Scalar](v V2[T]) T { return sqrt(Len2V2(v)) }

// LenV3 returns the length of v.
func LenV3[T Scalar](v V3[T]) T { return sqrt(Len2V3(v)) }

// LenV4 returns the length of v.
func LenV4[T Scalar](v V4[T]) T { return sqrt(Len2V4(v)) }

// NormV2 returns v normalized.
// A zero vector yields non-finite components.
func NormV2[T Scalar](v V2[T]) V2[T] { return ScaleV2(float64(1/LenV2(v)), v) }

// NormV3 returns v normalized.
// A zero vector yields non-finite components.
func NormV3[T Scalar](v V3[T]) V3[T] { return ScaleV3(float64(1/LenV3(v)), v) }

// NormV4 returns v normalized.
// A zero vector yields non-finite components.
func NormV4[T Scalar](v V4[T]) V4[T] { return ScaleV4(float64(1/LenV4(v)), v) }

// Cross returns v × w.
func Cross[T Scalar](v, w V3[T]) (u V3[T]) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Fill sets every component of v to x.
func (v *V2[T]) Fill(x T) { v[0], v[1] = x, x }

// Fill sets every component of v to x.
func (v *V3[T]) Fill(x T) { v[0], v[1], v[2] = x, x, x }

// Fill sets every component of v to x.
func (v *V4[T]) Fill(x T) { v[0], v[1], v[2], v[3] = x, x, x, x }

// Zero sets every component of v to zero.
func (v *V2[T]) Zero() { *v = V2[T]{} }

// Zero sets every component of v to zero.
func (v *V3[T]) Zero() { *v = V3[T]{} }

// Zero sets every component of v to zero.
func (v *V4[T]) Zero() { *v = V4[T]{} }

// Normalize scales v in place to unit length.
// A zero vector yields non-finite components.
func (v *V2[T]) Normalize() { *v = ScaleV2(float64(1/LenV2(*v)), *v) }

// Normalize scales v in place to unit length.
// A zero vector yields non-finite components.
func (v *V3[T]) Normalize() { *v = ScaleV3(float64(1/LenV3(*v)), *v) }

// Normalize scales v in place to unit length.
// A zero vector yields non-finite components.
func (v *V4[T]) Normalize() { *v = ScaleV4(float64(1/LenV4(*v)), *v) }

// X returns the first component of v.
func (v *V3[T]) X() T { return v[0] }

// Y returns the second component of v.
func (v *V3[T]) Y() T { return v[1] }

// Z returns the third component of v.
func (v *V3[T]) Z() T { return v[2] }

// SetX sets the first component of v.
func (v *V3[T]) SetX(x T) { v[0] = x }

// SetY sets the second component of v.
func (v *V3[T]) SetY(y T) { v[1] = y }

// SetZ sets the third component of v.
func (v *V3[T]) SetZ(z T) { v[2] = z }

// Set sets all components of v.
func (v *V3[T]) Set(x, y, z T) { v[0], v[1], v[2] = x, y, z }

// Transposed returns v as a row vector.
func (v V2[T]) Transposed() R2[T] { return R2[T](v) }

// Transposed returns v as a row vector.
func (v V3[T]) Transposed() R3[T] { return R3[T](v) }

// Transposed returns v as a row vector.
func (v V4[T]) Transposed() R4[T] { return R4[T](v) }

// String returns v in the 2x1 [a; b;] format.
func (v V2[T]) String() string {
	return format(2, 1, func(i, _ int) T { return v[i] })
}

// String returns v in the 3x1 [a; b; c;] format.
func (v V3[T]) String() string {
	return format(3, 1, func(i, _ int) T { return v[i] })
}

// String returns v in the 4x1 [a; b; c; d;] format.
func (v V4[T]) String() string {
	return format(4, 1, func(i, _ int) T { return v[i] })
}

// R2 is a 2-component row vector, the transpose of V2.
type R2[T Scalar] [2]T

// R3 is a 3-component row vector, the transpose of V3.
type R3[T Scalar] [3]T

// R4 is a 4-component row vector, the transpose of V4.
type R4[T Scalar] [4]T

// Mul returns the matrix product r ⋅ v.
// A [1xN]⋅[Nx1] product degenerates to a scalar.
func (r R2[T]) Mul(v V2[T]) (d T) {
	for i := range r {
		d += r[i] * v[i]
	}
	return
}

// Mul returns the matrix product r ⋅ v.
// A [1xN]⋅[Nx1] product degenerates to a scalar.
func (r R3[T]) Mul(v V3[T]) (d T) {
	for i := range r {
		d += r[i] * v[i]
	}
	return
}

// Mul returns the matrix product r ⋅ v.
// A [1xN]⋅[Nx1] product degenerates to a scalar.
func (r R4[T]) Mul(v V4[T]) (d T) {
	for i := range r {
		d += r[i] * v[i]
	}
	return
}

// Transposed returns r as a column vector.
func (r R2[T]) Transposed() V2[T] { return V2[T](r) }

// Transposed returns r as a column vector.
func (r R3[T]) Transposed() V3[T] { return V3[T](r) }

// Transposed returns r as a column vector.
func (r R4[T]) Transposed() V4[T] { return V4[T](r) }

// String returns r in the 1x2 [a b;] format.
func (r R2[T]) String() string {
	return format(1, 2, func(_, j int) T { return r[j] })
}

// String returns r in the 1x3 [a b c;] format.
func (r R3[T]) String() string {
	return format(1, 3, func(_, j int) T { return r[j] })
}

// String returns r in the 1x4 [a b c d;] format.
func (r R4[T]) String() string {
	return format(1, 4, func(_, j int) T { return r[j] })
}
