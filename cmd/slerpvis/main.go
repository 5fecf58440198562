// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Slerpvis plots quaternion interpolation behavior: the component
// curves of SlerpQ between two rotations, and the transform drift
// of a constant angular velocity integrated over a full revolution.
// It writes slerp.png and drift.png to the working directory.
package main

import (
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gviegas/linear"
)

func main() {
	if err := slerpCurves("slerp.png"); err != nil {
		log.Fatal(err)
	}
	if err := driftCurve("drift.png"); err != nil {
		log.Fatal(err)
	}
}

// slerpCurves plots the four components of SlerpQ(p, q, t) for
// t in (0, 1]. t = 0 is excluded: the interpolation increment
// degenerates there (zero vector part).
func slerpCurves(name string) error {
	a1 := linear.NormV3(linear.V3[float64]{1, 2, 2})
	a2 := linear.NormV3(linear.V3[float64]{0, 1, 0})
	var p, q linear.Q[float64]
	p.Rotate(0.3, &a1)
	q.Rotate(2.0, &a2)

	const n = 200
	var r, x, y, z plotter.XYs
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		s := linear.SlerpQ(p, q, t)
		r = append(r, plotter.XY{X: t, Y: s.R})
		x = append(x, plotter.XY{X: t, Y: s.V[0]})
		y = append(y, plotter.XY{X: t, Y: s.V[1]})
		z = append(z, plotter.XY{X: t, Y: s.V[2]})
	}

	pl := plot.New()
	pl.Title.Text = "SlerpQ components"
	pl.X.Label.Text = "t"
	if err := plotutil.AddLines(pl, "r", r, "x", x, "y", y, "z", z); err != nil {
		return err
	}
	return pl.Save(6*vg.Inch, 4*vg.Inch, name)
}

// driftCurve integrates a constant angular velocity step by step
// and plots the distance between a transformed vector and its
// expected position after each step.
func driftCurve(name string) error {
	axis := linear.V3[float64]{0, 0, 1}
	const steps = 360
	theta := 2 * math.Pi / steps

	inc := linear.ExpQ(linear.Q[float64]{V: linear.ScaleV3(theta/2, axis)})
	q := linear.IdentQ[float64]()
	v := linear.V3[float64]{1, 0, 0}

	var drift plotter.XYs
	for i := 1; i <= steps; i++ {
		q = linear.MulQ(q, inc)
		q.Normalize()
		want := linear.V3[float64]{
			math.Cos(float64(i) * theta),
			math.Sin(float64(i) * theta),
			0,
		}
		d := linear.LenV3(linear.SubV3(q.Transform(v), want))
		drift = append(drift, plotter.XY{X: float64(i), Y: d})
	}

	pl := plot.New()
	pl.Title.Text = "Integration drift"
	pl.X.Label.Text = "step"
	pl.Y.Label.Text = "|error|"
	if err := plotutil.AddLines(pl, "drift", drift); err != nil {
		return err
	}
	return pl.Save(6*vg.Inch, 4*vg.Inch, name)
}
