// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestM4Storage(t *testing.T) {
	// Column-major: m[j][i] is row i, column j.
	m := M4[float64]{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if x := m.At(i, j); x != float64(1+i+j*4) {
				t.Fatalf("M4.At(%d,%d)\nhave %v\nwant %v", i, j, x, 1+i+j*4)
			}
		}
	}
	if m.At(0, 0) != 1 || m.At(1, 0) != 2 || m.At(0, 1) != 5 || m.At(3, 3) != 16 {
		t.Fatalf("M4.At\nhave %v %v %v %v\nwant 1 2 5 16",
			m.At(0, 0), m.At(1, 0), m.At(0, 1), m.At(3, 3))
	}
	m.Set(2, 3, -1)
	if m[3][2] != -1 {
		t.Fatalf("M4.Set\nhave %v\nwant -1", m[3][2])
	}

	var n M4x2[float32]
	n.Fill(12.345)
	for j := range n {
		for i := range n[j] {
			if n[j][i] != 12.345 {
				t.Fatalf("M4x2.Fill\nhave %v\nwant 12.345", n[j][i])
			}
		}
	}
	n.Zero()
	if n != (M4x2[float32]{}) {
		t.Fatalf("M4x2.Zero\nhave %v\nwant zero matrix", n)
	}
}

func TestIdentity(t *testing.T) {
	m := Ident4[float64]()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float64(0)
			if i == j {
				want = 1
			}
			if x := m.At(i, j); x != want {
				t.Fatalf("Ident4 At(%d,%d)\nhave %v\nwant %v", i, j, x, want)
			}
		}
	}
	if m2 := Ident2[float32](); m2 != (M2[float32]{{1}, {0, 1}}) {
		t.Fatalf("Ident2\nhave %v\nwant [1 0; 0 1;]", m2)
	}
	if m3 := Ident3[float32](); m3 != (M3[float32]{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("Ident3\nhave %v\nwant identity", m3)
	}

	// Identity-like for non-square shapes: diagonal ones up to min(R,C).
	var r M4x2[float64]
	r.Fill(7)
	r.I()
	if r != (M4x2[float64]{{1}, {0, 1}}) {
		t.Fatalf("M4x2.I\nhave %v\nwant [1 0; 0 1; 0 0; 0 0;]", r)
	}
	var c M2x4[float64]
	c.Fill(7)
	c.I()
	if c != (M2x4[float64]{{1}, {0, 1}, {}, {}}) {
		t.Fatalf("M2x4.I\nhave %v\nwant [1 0 0 0; 0 1 0 0;]", c)
	}
	var a M3x4[float64]
	a.I()
	if a != (M3x4[float64]{{1}, {0, 1}, {0, 0, 1}, {}}) {
		t.Fatalf("M3x4.I\nhave %v\nwant identity-like", a)
	}
}

func TestM3Mul(t *testing.T) {
	var l M3[float64]
	m := M3[float64]{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}
	n := M3[float64]{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}

	if l.Mul(&m, &n); l != (M3[float64]{m[1], m[2], m[0]}) {
		t.Fatalf("M3.Mul\nhave %v\nwant [%v %v %v]", l, m[1], m[2], m[0])
	}
	if l.Mul(&n, &m); l != (M3[float64]{{7, 1, 4}, {8, 2, 5}, {9, 3, 6}}) {
		t.Fatalf("M3.Mul\nhave %v\nwant %v", l, M3[float64]{{7, 1, 4}, {8, 2, 5}, {9, 3, 6}})
	}
	// Aliased destination.
	l = m
	if l.Mul(&l, &n); l != (M3[float64]{m[1], m[2], m[0]}) {
		t.Fatalf("M3.Mul aliased\nhave %v\nwant [%v %v %v]", l, m[1], m[2], m[0])
	}
}

func TestMulRect(t *testing.T) {
	a := M4[float64]{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	b := M4x2[float64]{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	var c M4x2[float64]
	c.Mul(&a, &b)
	if c != (M4x2[float64]{{90, 100, 110, 120}, {202, 228, 254, 280}}) {
		t.Fatalf("M4x2.Mul\nhave %v\nwant [90 202; 100 228; 110 254; 120 280;]", c)
	}
	if c.At(0, 0) != 90 || c.At(3, 1) != 280 {
		t.Fatalf("M4x2.Mul\nhave %v %v\nwant 90 280", c.At(0, 0), c.At(3, 1))
	}

	// Multiplying by the identity preserves the operand.
	i4 := Ident4[float64]()
	var d M4x2[float64]
	d.Mul(&i4, &b)
	if d != b {
		t.Fatalf("M4x2.Mul identity\nhave %v\nwant %v", d, b)
	}
}

func TestTranspose(t *testing.T) {
	m := M4[float64]{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	mt := m.Transposed()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if mt.At(j, i) != m.At(i, j) {
				t.Fatalf("M4.Transposed At(%d,%d)\nhave %v\nwant %v",
					j, i, mt.At(j, i), m.At(i, j))
			}
		}
	}
	if mt.Transposed() != m {
		t.Fatalf("M4.Transposed involution\nhave %v\nwant %v", mt.Transposed(), m)
	}

	b := M4x2[float64]{{1, 2, 3, 4}, {5, 6, 7, 8}}
	bt := b.Transposed()
	if bt != (M2x4[float64]{{1, 5}, {2, 6}, {3, 7}, {4, 8}}) {
		t.Fatalf("M4x2.Transposed\nhave %v\nwant [1 2 3 4; 5 6 7 8;]", bt)
	}
	if bt.Transposed() != b {
		t.Fatalf("M4x2.Transposed involution\nhave %v\nwant %v", bt.Transposed(), b)
	}
}

func TestArith(t *testing.T) {
	a := M2[float64]{{1, 2}, {3, 4}}
	b := M2[float64]{{5, 6}, {7, 8}}
	var m M2[float64]

	if m.Add(&a, &b); m != (M2[float64]{{6, 8}, {10, 12}}) {
		t.Fatalf("M2.Add\nhave %v\nwant [6 10; 8 12;]", m)
	}
	if m.Sub(&b, &a); m != (M2[float64]{{4, 4}, {4, 4}}) {
		t.Fatalf("M2.Sub\nhave %v\nwant [4 4; 4 4;]", m)
	}
	if m.Scale(2, &a); m != (M2[float64]{{2, 4}, {6, 8}}) {
		t.Fatalf("M2.Scale\nhave %v\nwant [2 6; 4 8;]", m)
	}
	if m.Neg(&a); m != (M2[float64]{{-1, -2}, {-3, -4}}) {
		t.Fatalf("M2.Neg\nhave %v\nwant [-1 -3; -2 -4;]", m)
	}

	r := M3x2[float64]{{1, 2, 3}, {4, 5, 6}}
	var n M3x2[float64]
	if n.Add(&r, &r); n != (M3x2[float64]{{2, 4, 6}, {8, 10, 12}}) {
		t.Fatalf("M3x2.Add\nhave %v\nwant 2r", n)
	}
	if n.Sub(&n, &r); n != r {
		t.Fatalf("M3x2.Sub\nhave %v\nwant %v", n, r)
	}
}

func TestMulAssociativity(t *testing.T) {
	a := M3[float64]{{0.5, -1.25, 2}, {3.75, 0.1, -0.6}, {1.1, 2.2, -3.3}}
	b := M3[float64]{{-2, 0.25, 1}, {0.5, 4, -1.5}, {3, -0.75, 0.125}}
	c := M3[float64]{{1.5, 2.5, -0.5}, {-1, 0.2, 3}, {0.7, -2.4, 1.9}}

	var ab, abc1, bc, abc2 M3[float64]
	ab.Mul(&a, &b)
	abc1.Mul(&ab, &c)
	bc.Mul(&b, &c)
	abc2.Mul(&a, &bc)
	for j := range abc1 {
		for i := range abc1[j] {
			assert.InDelta(t, abc1[j][i], abc2[j][i], 1e-12)
		}
	}
}

func TestMulV(t *testing.T) {
	m := M3[float64]{
		{2, 0, 1},
		{1, 3, 2},
		{4, 2, 3},
	}
	v := V3[float64]{-1, 0, 1}
	var u V3[float64]

	if u.Mul(&m, &v); u != (V3[float64]{2, 2, 2}) {
		t.Fatalf("V3.Mul\nhave %v\nwant [2; 2; 2;]", u)
	}
	m.I()
	if u.Mul(&m, &v); u != v {
		t.Fatalf("V3.Mul\nhave %v\nwant %v", u, v)
	}

	var a M3x4[float64]
	a.I()
	w := V4[float64]{1, 2, 3, 9}
	if u.MulM3x4(&a, &w); u != (V3[float64]{1, 2, 3}) {
		t.Fatalf("V3.MulM3x4\nhave %v\nwant [1; 2; 3;]", u)
	}
	var b M4x3[float64]
	b.I()
	var x V4[float64]
	if x.MulM4x3(&b, &u); x != (V4[float64]{1, 2, 3, 0}) {
		t.Fatalf("V4.MulM4x3\nhave %v\nwant [1; 2; 3; 0;]", x)
	}
}

func TestTRS(t *testing.T) {
	x := TranslationM4[float32](-1, -2, -3)
	var q Q[float32]
	q.Rotate(0, &V3[float32]{1, 0, 0})
	var r M4[float32]
	r.RotateQ(&q)
	s := ScalingM4[float32](5, 5, 5)
	x.Mul(&x, &r)
	x.Mul(&x, &s)
	if x != (M4[float32]{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}}) {
		t.Fatalf("T*R*S\nhave %v\nwant %v", x, M4[float32]{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}})
	}
	v := V4[float32]{1, 1, 1, 1}
	v.Mul(&x, &v)
	if v != (V4[float32]{4, 3, 2, 1}) {
		t.Fatalf("TRS*v\nhave %v\nwant %v", v, V4[float32]{4, 3, 2, 1})
	}
}

func TestMString(t *testing.T) {
	m := M2[float64]{{1, 2}, {3, 4}}
	if s := m.String(); s != "[1 3; 2 4;]" {
		t.Fatalf("M2.String\nhave %q\nwant %q", s, "[1 3; 2 4;]")
	}
	b := M4x2[float64]{{1, 2, 3, 4}, {5, 6, 7, 8}}
	if s := b.String(); s != "[1 5; 2 6; 3 7; 4 8;]" {
		t.Fatalf("M4x2.String\nhave %q\nwant %q", s, "[1 5; 2 6; 3 7; 4 8;]")
	}
}
