// Package mathf provides the pinned software float32 math used by the
// simulation. Every instance participating in a rollback resimulation must
// evaluate trigonometry and square roots to identical bits, so the kernels
// are written out here instead of calling the platform math package, whose
// Sin/Cos/Sqrt may be replaced by hardware instructions depending on GOARCH.
// The only use of the standard library is Float32bits/Float32frombits, which
// are pure bit casts.
package mathf

import "math"

// Pi is 3.14159, not math.Pi: recorded replays were produced with this
// truncated constant and parity with them matters more than precision.
const Pi float32 = 3.14159

const halfPi = Pi / 2

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * (Pi / 180.0) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad * (180.0 / Pi) }

// Sin evaluates sine via a degree-7 polynomial after folding the argument
// into [-Pi/2, Pi/2]. Arguments in this simulation are bounded (headings in
// [0,360) degrees), so loop-based range reduction is cheap and exact enough.
func Sin(x float32) float32 {
	for x > Pi {
		x -= 2 * Pi
	}
	for x < -Pi {
		x += 2 * Pi
	}
	if x > halfPi {
		x = Pi - x
	} else if x < -halfPi {
		x = -Pi - x
	}
	x2 := x * x
	// x - x^3/6 + x^5/120 - x^7/5040, Horner form
	return x * (1 + x2*(-1.0/6.0+x2*(1.0/120.0+x2*(-1.0/5040.0))))
}

// Cos evaluates cosine through the Sin kernel.
func Cos(x float32) float32 { return Sin(halfPi - x) }

// SinDeg is Sin of an angle given in degrees.
func SinDeg(deg float32) float32 { return Sin(DegToRad(deg)) }

// CosDeg is Cos of an angle given in degrees.
func CosDeg(deg float32) float32 { return Cos(DegToRad(deg)) }

// Sqrt computes the square root with a reciprocal-root seed refined by three
// Newton steps. Non-positive input returns 0.
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	i := math.Float32bits(x)
	i = 0x5f3759df - i>>1
	y := math.Float32frombits(i)
	y = y * (1.5 - 0.5*x*y*y)
	y = y * (1.5 - 0.5*x*y*y)
	y = y * (1.5 - 0.5*x*y*y)
	return x * y
}

// Hypot is Sqrt(a*a + b*b) without overflow protection; simulation
// magnitudes stay far below float32 limits.
func Hypot(a, b float32) float32 { return Sqrt(a*a + b*b) }

// atan minimax polynomial, valid for |z| <= 1
func atanPoly(z float32) float32 {
	z2 := z * z
	return z * (0.99997726 + z2*(-0.33262347+z2*(0.19354346+
		z2*(-0.11643287+z2*(0.05265332+z2*(-0.01172120))))))
}

// Atan2 returns the angle of the vector (x, y) in radians in (-Pi, Pi].
func Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	if Abs(x) >= Abs(y) {
		a := atanPoly(y / x)
		if x < 0 {
			if y >= 0 {
				return a + Pi
			}
			return a - Pi
		}
		return a
	}
	if y > 0 {
		return halfPi - atanPoly(x/y)
	}
	return -halfPi - atanPoly(x/y)
}

// NormalizeDeg wraps an angle into [0, 360).
func NormalizeDeg(d float32) float32 {
	for d >= 360 {
		d -= 360
	}
	for d < 0 {
		d += 360
	}
	return d
}

// NormalizeSignedDeg wraps an angle into (-180, 180].
func NormalizeSignedDeg(d float32) float32 {
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
