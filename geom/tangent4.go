// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// rotationSteps and rotationStepAngle bound the singular-system retry of
// Tangent4 (spec.md §4.1): up to rotationSteps retries, rotating the working
// frame by rotationStepAngle*step radians about a fixed axis each time.
const (
	rotationSteps     = 2
	rotationStepAngle = 30.0 * math.Pi / 180.0
)

var rotationAxis = mustUnit(Point{1, 1, 1})

func mustUnit(p Point) Point {
	u, _ := p.Unit()
	return u
}

// Tangent4 returns every sphere simultaneously tangent to four balls in the
// additively-weighted sense (spec.md §4.1). It returns 0, 1 or 2 spheres; a
// returned sphere t always satisfies |‖t-si‖-(t.r+si.r)| <= tol.Eps for every
// input ball, and has non-negative radius.
//
// The smallest-radius ball is permuted into the first slot before
// linearization for numeric conditioning, exactly as the four inputs are
// re-centered around it; this permutation must stay bit-for-bit stable
// because the rotation retry below depends on it.
func Tangent4(s0, s1, s2, s3 Ball, tol Tolerance) []TangentSphere {
	sm, sa, sb, sc := s0, s1, s2, s3
	minR := math.Min(sm.R, math.Min(sa.R, math.Min(sb.R, sc.R)))
	if sm.R != minR {
		switch {
		case sa.R == minR:
			sm, sa = sa, sm
		case sb.R == minR:
			sm, sb = sb, sm
		case sc.R == minR:
			sm, sc = sc, sm
		}
	}

	for step := 0; step <= rotationSteps; step++ {
		ta := recenter(sa, sm)
		tb := recenter(sb, sm)
		tc := recenter(sc, sm)
		if step > 0 {
			angle := rotationStepAngle * float64(step)
			ta = rotateSphere(ta, rotationAxis, angle)
			tb = rotateSphere(tb, rotationAxis, angle)
			tc = rotateSphere(tc, rotationAxis, angle)
		}

		// Build the linear system whose solution expresses (x,y,z) of the
		// tangent sphere's center as an affine function of its radius r:
		// x = u1*r+v1, y = u2*r+v2, z = u3*r+v3. Each row comes from
		// subtracting the "sphere-tangent" quadratic equation of ball i from
		// that of ball 1 (eliminating the quadratic x^2+y^2+z^2-r^2 term).
		a := la.MatAlloc(3, 3)
		dcol := make([]float64, 3)
		ocol := make([]float64, 3)
		fillTangentRow(a, dcol, ocol, 0, ta)
		fillTangentRow(a, dcol, ocol, 1, tb)
		fillTangentRow(a, dcol, ocol, 2, tc)

		ainv := la.MatAlloc(3, 3)
		if err := la.MatInvG(ainv, a, 1e-13); err != nil {
			continue // singular system: rotate and retry
		}

		u := negate(matVec(ainv, dcol)) // u = -A^{-1} d
		v := negate(matVec(ainv, ocol)) // v = -A^{-1} o

		qa := u[0]*u[0] + u[1]*u[1] + u[2]*u[2] - 1
		qb := 2 * (u[0]*v[0] + u[1]*v[1] + u[2]*v[2])
		qc := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]

		roots, ok := safeQuadraticRoots(qa, qb, qc)
		if !ok {
			continue
		}

		var results []TangentSphere
		for _, r := range roots {
			if r < 0 {
				continue
			}
			cand := Point{u[0]*r + v[0], u[1]*r + v[1], u[2]*r + v[2]}
			if step > 0 {
				cand = cand.Rotated(rotationAxis, -angleFor(step))
			}
			cand = cand.Add(sm.C)
			candR := r - sm.R
			ts := TangentSphere{C: cand, R: candR}
			if candR >= -tol.Eps && touchesAllTol(ts, tol, sm, sa, sb, sc) {
				if candR < 0 {
					ts.R = 0
				}
				results = append(results, ts)
			}
		}
		return results
	}
	return nil
}

func angleFor(step int) float64 { return rotationStepAngle * float64(step) }

// matVec returns a*v for a 3x3 matrix a.
func matVec(a [][]float64, v []float64) []float64 {
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2]
	}
	return out
}

// negate returns -v elementwise.
func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

// recenter shifts ball s into the frame centered on sm, per the additively
// weighted linearization: (x,y,z,r) -> (x-xm, y-ym, z-zm, r-rm).
func recenter(s, sm Ball) TangentSphere {
	return TangentSphere{C: s.C.Sub(sm.C), R: s.R - sm.R}
}

func rotateSphere(s TangentSphere, axis Point, angle float64) TangentSphere {
	return TangentSphere{C: s.C.Rotated(axis, angle), R: s.R}
}

// fillTangentRow fills row i of the 3x3 system (spec.md §4.1's linearized
// tangency equations) from a recentered sphere t=(x,y,z,r).
func fillTangentRow(a [][]float64, dcol, ocol []float64, i int, t TangentSphere) {
	a[i][0] = 2 * t.C.X
	a[i][1] = 2 * t.C.Y
	a[i][2] = 2 * t.C.Z
	dcol[i] = 2 * t.R
	ocol[i] = t.R*t.R - t.C.X*t.C.X - t.C.Y*t.C.Y - t.C.Z*t.C.Z
}

// safeQuadraticRoots solves a*r^2+b*r+c=0 with the safe-root form
// q = -(b+sign(b)*sqrt(b^2-4ac))/2, r1=q/a, r2=c/q (spec.md §4.1). A
// discriminant that is slightly negative due to roundoff is treated as zero;
// a more negative discriminant reports ok=false (no real roots).
func safeQuadraticRoots(a, b, c float64) (roots []float64, ok bool) {
	if math.Abs(a) < 1e-13 {
		if math.Abs(b) < 1e-13 {
			return nil, false
		}
		return []float64{-c / b}, true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		if disc > -1e-9 {
			disc = 0
		} else {
			return nil, false
		}
	}
	sq := math.Sqrt(disc)
	sgn := fun.Sign(b)
	if sgn == 0 {
		sgn = 1
	}
	q := -(b + sgn*sq) / 2
	if math.Abs(q) < 1e-300 {
		return []float64{0}, true
	}
	r1 := q / a
	r2 := c / q
	return []float64{r1, r2}, true
}

func touchesAllTol(ts TangentSphere, tol Tolerance, balls ...Ball) bool {
	for _, b := range balls {
		if !tol.TouchesBall(ts, b) {
			return false
		}
	}
	return true
}
