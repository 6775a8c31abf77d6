// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textio implements the line-oriented text interchange of spec.md
// §6: it is used only by tests and fixtures, never by the core runtime.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/apollon/apollonius"
	"github.com/cpmech/apollon/geom"
)

// precisionDigits mirrors numeric_limits<double>::digits10.
const precisionDigits = 15

// WriteBalls writes one "x y z r" line per ball.
func WriteBalls(w io.Writer, balls []geom.Ball) error {
	bw := bufio.NewWriter(w)
	for _, b := range balls {
		if _, err := fmt.Fprintf(bw, "%.*f %.*f %.*f %.*f\n",
			precisionDigits, b.C.X, precisionDigits, b.C.Y, precisionDigits, b.C.Z, precisionDigits, b.R); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBalls parses lines of "x y z r" into balls.
func ReadBalls(r io.Reader) ([]geom.Ball, error) {
	var balls []geom.Ball
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("textio: malformed ball line %q", line)
		}
		vals, err := parseFloats(fields)
		if err != nil {
			return nil, err
		}
		balls = append(balls, geom.NewBall(vals[0], vals[1], vals[2], vals[3]))
	}
	return balls, sc.Err()
}

// WriteVertices writes one "q0 q1 q2 q3 tx ty tz tr" line per vertex.
func WriteVertices(w io.Writer, vertices []apollonius.VertexEntry) error {
	bw := bufio.NewWriter(w)
	for _, v := range vertices {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %.*f %.*f %.*f %.*f\n",
			v.Q[0], v.Q[1], v.Q[2], v.Q[3],
			precisionDigits, v.TS.C.X, precisionDigits, v.TS.C.Y, precisionDigits, v.TS.C.Z, precisionDigits, v.TS.R); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadVertices parses lines of "q0 q1 q2 q3 tx ty tz tr" into vertices.
func ReadVertices(r io.Reader) ([]apollonius.VertexEntry, error) {
	var out []apollonius.VertexEntry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 8 {
			return nil, fmt.Errorf("textio: malformed vertex line %q", line)
		}
		q := make([]int, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("textio: bad quadruple index %q: %v", fields[i], err)
			}
			q[i] = v
		}
		vals, err := parseFloats(fields[4:])
		if err != nil {
			return nil, err
		}
		out = append(out, apollonius.VertexEntry{
			Q:  geom.NewQuadruple(q[0], q[1], q[2], q[3]),
			TS: geom.TangentSphere{C: geom.NewPoint(vals[0], vals[1], vals[2]), R: vals[3]},
		})
	}
	return out, sc.Err()
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("textio: bad number %q: %v", f, err)
		}
		out[i] = v
	}
	return out, nil
}
