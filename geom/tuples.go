// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Pair, Triple and Quadruple are ordered-ascending tuples of ball indices.
// Being plain fixed-size int arrays, they are directly comparable and usable
// as map keys with no hash functor needed (unlike the unordered_map<Quadruple,
// ...> of the source this is ported from).

// Pair is an ordered-ascending 2-tuple of ball indices.
type Pair [2]int

// Triple is an ordered-ascending 3-tuple of ball indices.
type Triple [3]int

// Quadruple is an ordered-ascending 4-tuple of ball indices.
type Quadruple [4]int

// NewPair returns the Pair(a,b) in ascending order.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// NewTriple returns Triple(a,b,c) in ascending order.
func NewTriple(a, b, c int) Triple {
	v := [3]int{a, b, c}
	insertionSort(v[:])
	return Triple{v[0], v[1], v[2]}
}

// NewQuadruple returns Quadruple(a,b,c,d) in ascending order.
func NewQuadruple(a, b, c, d int) Quadruple {
	v := [4]int{a, b, c, d}
	insertionSort(v[:])
	return Quadruple{v[0], v[1], v[2], v[3]}
}

// QuadrupleFromTriple builds a Quadruple from an existing Triple plus one
// extra index, re-sorting the result.
func QuadrupleFromTriple(t Triple, d int) Quadruple {
	return NewQuadruple(t[0], t[1], t[2], d)
}

func insertionSort(v []int) {
	for i := 1; i < len(v); i++ {
		key := v[i]
		j := i - 1
		for j >= 0 && v[j] > key {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = key
	}
}

// Contains reports whether id is one of the pair's members.
func (p Pair) Contains(id int) bool { return p[0] == id || p[1] == id }

// Contains reports whether id is one of the triple's members.
func (t Triple) Contains(id int) bool { return t[0] == id || t[1] == id || t[2] == id }

// Contains reports whether id is one of the quadruple's members.
func (q Quadruple) Contains(id int) bool {
	return q[0] == id || q[1] == id || q[2] == id || q[3] == id
}

// HasRepetitions reports whether the quadruple contains a duplicated index.
func (q Quadruple) HasRepetitions() bool {
	return q[0] == q[1] || q[0] == q[2] || q[0] == q[3] || q[1] == q[2] || q[1] == q[3] || q[2] == q[3]
}

// Exclude returns the Triple obtained by dropping the kth member (0..3).
func (q Quadruple) Exclude(k int) Triple {
	var out [3]int
	j := 0
	for i := 0; i < 4; i++ {
		if i == k {
			continue
		}
		out[j] = q[i]
		j++
	}
	return NewTriple(out[0], out[1], out[2])
}

// Exclude returns the Pair obtained by dropping the kth member (0..2).
func (t Triple) Exclude(k int) Pair {
	var out [2]int
	j := 0
	for i := 0; i < 3; i++ {
		if i == k {
			continue
		}
		out[j] = t[i]
		j++
	}
	return NewPair(out[0], out[1])
}

// IndexOf returns the position of id within the quadruple, or -1.
func (q Quadruple) IndexOf(id int) int {
	for i := 0; i < 4; i++ {
		if q[i] == id {
			return i
		}
	}
	return -1
}
