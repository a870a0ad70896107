// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena carves sized structures out of one caller-owned byte slice.
//
// Every structure of the solver stack publishes the number of bytes it needs
// through a size query. The caller sums those sizes, obtains one contiguous
// buffer and hands consecutive pieces of it to the placement constructors.
// Each piece starts on an [Alignment] boundary so wider scalar loads inside
// the buffer stay aligned.
package arena

import (
	"fmt"
	"unsafe"
)

// Alignment is the boundary every sub-allocation starts on.
const Alignment = 8

// Align rounds size up to a multiple of Alignment.
func Align(size int) int {
	return (size + Alignment - 1) / Alignment * Alignment
}

// Size returns the number of bytes an arena needs to host the given
// allocations, including the worst-case padding before the first one.
func Size(sizes ...int) (total int) {
	for _, s := range sizes {
		total += Align(s)
	}
	if total > 0 {
		total += Alignment - 1
	}
	return
}

// Arena is a bump allocator over memory it does not own.
// It never grows: allocating past the end is a caller bug and panics.
// An Arena must not be used from several goroutines without external locking.
type Arena struct {
	mem []byte
	off int
}

// New creates an arena over mem. The first allocation is moved forward
// to the first aligned address inside mem if needed.
func New(mem []byte) *Arena {
	a := &Arena{mem: mem}
	a.Reset()
	return a
}

// Alloc returns the next size bytes of the arena, starting on an aligned
// address. The cursor advances by Align(size).
func (a *Arena) Alloc(size int) []byte {
	if size < 0 {
		panic(fmt.Sprintf("arena: negative allocation %d", size))
	}
	n := Align(size)
	if a.off+n > len(a.mem) {
		panic(fmt.Sprintf("arena: allocation of %d bytes exceeds capacity (%d/%d used)", n, a.off, len(a.mem)))
	}
	b := a.mem[a.off : a.off+size : a.off+n]
	a.off += n
	return b
}

// Reset rewinds the arena so the memory can host another problem instance.
// Slices returned earlier alias the new allocations.
func (a *Arena) Reset() {
	a.off = 0
	if len(a.mem) > 0 {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(a.mem)))
		a.off = min((Alignment-int(base%Alignment))%Alignment, len(a.mem))
	}
}

// Len returns the bytes consumed so far, leading padding included.
func (a *Arena) Len() int { return a.off }

// Cap returns the size of the backing memory.
func (a *Arena) Cap() int { return len(a.mem) }
