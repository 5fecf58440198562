// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import "math"

// Generic forms of the math functions the package needs.
// Computation happens in float64 and is truncated back to T.

func sqrt[T Scalar](x T) T { return T(math.Sqrt(float64(x))) }

func sin[T Scalar](x T) T { return T(math.Sin(float64(x))) }

func cos[T Scalar](x T) T { return T(math.Cos(float64(x))) }

func acos[T Scalar](x T) T { return T(math.Acos(float64(x))) }

func exp[T Scalar](x T) T { return T(math.Exp(float64(x))) }

func ln[T Scalar](x T) T { return T(math.Log(float64(x))) }
