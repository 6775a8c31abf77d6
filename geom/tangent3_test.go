// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestTangent3ForRadiusEqualBalls(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("Tangent3ForRadiusEqualBalls")

	a := NewBall(0, 0, 0, 1)
	b := NewBall(3, 0, 0, 1)
	c := NewBall(1.5, 3, 0, 1)

	got := Tangent3ForRadius(a, b, c, 1.0)
	if len(got) != 2 {
		tst.Fatalf("expected 2 tangent spheres, got %d", len(got))
	}
	for _, ts := range got {
		for _, ball := range []Ball{a, b, c} {
			d := Distance(ts.C, ball.C)
			chk.Scalar(tst, "tangency residual", 1e-6, d-(ts.R+ball.R), 0)
		}
	}
}

func TestTangent3MinimalIsInPlane(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("Tangent3MinimalIsInPlane")

	a := NewBall(0, 0, 0, 1)
	b := NewBall(3, 0, 0, 1)
	c := NewBall(1.5, 3, 0, 1)

	ts, ok := Tangent3Minimal(a, b, c)
	if !ok {
		tst.Fatal("expected a minimal tangent sphere")
	}
	for _, ball := range []Ball{a, b, c} {
		d := Distance(ts.C, ball.C)
		chk.Scalar(tst, "tangency residual", 1e-6, d-(ts.R+ball.R), 0)
	}
	if ts.R < 0 {
		tst.Fatal("minimal tangent sphere must have non-negative radius")
	}
}

func TestTangentPlanes3Symmetric(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("TangentPlanes3Symmetric")

	a := NewBall(0, 0, 0, 1)
	b := NewBall(3, 0, 0, 1)
	c := NewBall(1.5, 3, 0, 1)

	planes := TangentPlanes3(a, b, c)
	if len(planes) != 2 {
		tst.Fatalf("expected 2 tangent planes, got %d", len(planes))
	}
	for _, pl := range planes {
		nn := pl.N.Norm()
		chk.Scalar(tst, "unit normal", 1e-9, nn, 1)
		for _, ball := range []Ball{a, b, c} {
			dist := pl.N.Dot(ball.C.Sub(pl.P))
			chk.Scalar(tst, "plane tangency residual", 1e-6, dist, ball.R)
		}
	}
}

func TestTangentPlanes3Collinear(tst *testing.T) {
	chk.PrintTitle("TangentPlanes3Collinear")
	a := NewBall(0, 0, 0, 1)
	b := NewBall(2, 0, 0, 1)
	c := NewBall(4, 0, 0, 1)
	planes := TangentPlanes3(a, b, c)
	if planes != nil {
		tst.Fatal("expected no tangent plane for collinear centers")
	}
}
