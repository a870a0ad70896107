// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package denseqcqp

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/curioloop/qcqp/arena"
)

// Dim describes the size of one dense QCQP instance:
//
//	min  ½ xᵀHx + gᵀx
//	s.t. A x = b                       (ne)
//	     lb ≤ x[idxb] ≤ ub             (nb, nsb of them soft)
//	     lg ≤ C x ≤ ug                 (ng, nsg of them soft)
//	     ½ xᵀQₖx + qₖᵀx ≤ uqₖ           (nq)
//
// A Dim is a view over memory owned by the caller. It is created by
// CreateDim and configured field by field afterward; readers (problem data,
// workspace sizing) must not run concurrently with the setters.
type Dim struct {
	memsize int // memory size in bytes
	nv      int // number of variables
	ne      int // number of equality constraints
	nb      int // number of box constraints
	ng      int // number of general constraints
	nq      int // number of quadratic constraints
	ns      int // number of slacks
	nsb     int // number of soft box constraints
	nsg     int // number of soft general constraints
}

// Sizes is a snapshot of the fields of a Dim.
type Sizes struct {
	Nv, Ne, Nb, Ng, Nq int
	Nsb, Nsg, Ns       int
}

// DimMemSize returns the bytes needed to host one Dim, rounded up to the
// arena alignment. The value does not depend on the dimension itself.
func DimMemSize() int {
	return arena.Align(int(unsafe.Sizeof(Dim{})))
}

// CreateDim builds a zero dimension at the start of mem and returns it.
// mem must hold at least DimMemSize bytes starting on an aligned address,
// which is what arena.Alloc hands out. Creating again on the same memory
// discards the previous configuration.
func CreateDim(mem []byte) *Dim {
	size := DimMemSize()
	dim := (*Dim)(unsafe.Pointer(unsafe.SliceData(mem[:size])))
	*dim = Dim{memsize: size}
	return dim
}

// NewDim creates a dimension in freshly allocated memory.
func NewDim() *Dim {
	return CreateDim(make([]byte, DimMemSize()))
}

// MemSize returns the bytes consumed by the dimension.
func (d *Dim) MemSize() int { return d.memsize }

// Reset sets every size back to zero.
func (d *Dim) Reset() {
	*d = Dim{memsize: d.memsize}
}

// Set stores value into field f.
// Setting Nsb or Nsg recomputes ns = nsb + nsg from the values currently held,
// so the two may be set in any order. Setting Ns stores it as given; the next
// Nsb or Nsg set overwrites it again.
// Set panics if f is not one of the declared fields.
func (d *Dim) Set(f Field, value int) {
	switch f {
	case Nv:
		d.nv = value
	case Ne:
		d.ne = value
	case Nb:
		d.nb = value
	case Ng:
		d.ng = value
	case Nq:
		d.nq = value
	case Nsb:
		d.nsb = value
		d.ns = d.nsb + d.nsg
	case Nsg:
		d.nsg = value
		d.ns = d.nsb + d.nsg
	case Ns:
		d.ns = value
	default:
		panic(fmt.Sprintf("dense qcqp dim: %v %v", ErrUnknownField, f))
	}
}

// SetByName is Set for a field given by name. An unknown name leaves the
// dimension untouched and returns an error wrapping ErrUnknownField.
func (d *Dim) SetByName(name string, value int) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	d.Set(f, value)
	return nil
}

// SetAll sets every size at once; ns is derived as nsb + nsg.
func (d *Dim) SetAll(nv, ne, nb, ng, nq, nsb, nsg int) {
	d.nv, d.ne, d.nb, d.ng, d.nq = nv, ne, nb, ng, nq
	d.nsb, d.nsg = nsb, nsg
	d.ns = nsb + nsg
}

func (d *Dim) SetNv(nv int)   { d.Set(Nv, nv) }
func (d *Dim) SetNe(ne int)   { d.Set(Ne, ne) }
func (d *Dim) SetNb(nb int)   { d.Set(Nb, nb) }
func (d *Dim) SetNg(ng int)   { d.Set(Ng, ng) }
func (d *Dim) SetNq(nq int)   { d.Set(Nq, nq) }
func (d *Dim) SetNs(ns int)   { d.Set(Ns, ns) }
func (d *Dim) SetNsb(nsb int) { d.Set(Nsb, nsb) }
func (d *Dim) SetNsg(nsg int) { d.Set(Nsg, nsg) }

// Get returns the value of field f. It panics if f is not a declared field.
func (d *Dim) Get(f Field) int {
	switch f {
	case Nv:
		return d.nv
	case Ne:
		return d.ne
	case Nb:
		return d.nb
	case Ng:
		return d.ng
	case Nq:
		return d.nq
	case Ns:
		return d.ns
	case Nsb:
		return d.nsb
	case Nsg:
		return d.nsg
	}
	panic(fmt.Sprintf("dense qcqp dim: %v %v", ErrUnknownField, f))
}

func (d *Dim) Nv() int  { return d.nv }
func (d *Dim) Ne() int  { return d.ne }
func (d *Dim) Nb() int  { return d.nb }
func (d *Dim) Ng() int  { return d.ng }
func (d *Dim) Nq() int  { return d.nq }
func (d *Dim) Ns() int  { return d.ns }
func (d *Dim) Nsb() int { return d.nsb }
func (d *Dim) Nsg() int { return d.nsg }

// Sizes returns a copy of all sizes.
func (d *Dim) Sizes() Sizes {
	return Sizes{
		Nv: d.nv, Ne: d.ne, Nb: d.nb, Ng: d.ng, Nq: d.nq,
		Nsb: d.nsb, Nsg: d.nsg, Ns: d.ns,
	}
}

func (d *Dim) String() string {
	return fmt.Sprintf("nv=%d ne=%d nb=%d ng=%d nq=%d ns=%d nsb=%d nsg=%d",
		d.nv, d.ne, d.nb, d.ng, d.nq, d.ns, d.nsb, d.nsg)
}

// Print writes one field per line to w, or to stdout when w is nil.
func (d *Dim) Print(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	for f := Field(0); f < numFields; f++ {
		_, _ = fmt.Fprintf(w, "%-4s %d\n", f, d.Get(f))
	}
}
