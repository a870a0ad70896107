// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package denseqcqp

import (
	"errors"
	"fmt"
)

// Field selects one size of the dense QCQP dimension.
type Field int

const (
	// Nv number of variables
	Nv Field = iota
	// Ne number of equality constraints
	Ne
	// Nb number of box constraints
	Nb
	// Ng number of general constraints
	Ng
	// Nq number of quadratic constraints
	Nq
	// Ns number of slacks
	Ns
	// Nsb number of soft box constraints
	Nsb
	// Nsg number of soft general constraints
	Nsg
	numFields
)

var fieldNames = [numFields]string{
	Nv: "nv", Ne: "ne", Nb: "nb", Ng: "ng", Nq: "nq",
	Ns: "ns", Nsb: "nsb", Nsg: "nsg",
}

// ErrUnknownField is returned when a field name is outside the closed set.
var ErrUnknownField = errors.New("wrong field")

func (f Field) valid() bool {
	return f >= 0 && f < numFields
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField maps a field name such as "nsb" onto its Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("dense qcqp dim: %w %q", ErrUnknownField, name)
}
