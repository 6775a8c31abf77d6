// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the numeric tolerances and mesh parameters the rest
// of apollon needs, mirroring the JSON-driven configuration style of the
// teacher's simulation input files (gofem's inp package) but restricted to
// the handful of scalars this core actually takes as parameters -- never
// molecular file formats, which stay out of scope.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config bundles every tunable numeric parameter of the core (spec.md §4.2,
// §4.4, §4.5, §4.6).
type Config struct {
	Eps              float64 `json:"eps"`              // global tolerance ε
	R0               float64 `json:"r0"`               // BSH level-1 bucket edge length
	Probe            float64 `json:"probe"`            // solvent probe radius
	Step             float64 `json:"step"`             // contour mending step length h
	Projections      int     `json:"projections"`      // contour mending projection iterations k
	SihDepth         int     `json:"sihDepth"`         // solvent-cap icosahedron subdivision depth
	AllowTwoTangents bool    `json:"allowTwoTangents"` // permit degenerate 2-tangent quadruples
	IncludeSurplus   bool    `json:"includeSurplus"`   // run the co-spherical surplus pass
}

// Default returns the configuration used when a caller supplies none.
func Default() Config {
	return Config{
		Eps:         1e-8,
		R0:          3.5,
		Probe:       1.4,
		Step:        0.2,
		Projections: 3,
		SihDepth:    3,
	}
}

// Load reads a Config from a JSON file at path, keeping the Default value
// for any field the file does not set.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := io.ReadFile(path)
	if err != nil {
		return Config{}, chk.Err("config: cannot load %q: %v", path, err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, chk.Err("config: cannot parse %q: %v", path, err)
	}
	return cfg, nil
}
