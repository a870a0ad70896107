// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func TestAlign(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 72: 72, 73: 80}
	for in, want := range cases {
		if got := Align(in); got != want {
			t.Errorf("Align(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSize(t *testing.T) {
	if got := Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
	if got := Size(3, 16, 1); got != 8+16+8+Alignment-1 {
		t.Fatalf("Size(3, 16, 1) = %d", got)
	}
}

func TestAllocLayout(t *testing.T) {
	sizes := []int{3, 16, 1}
	backing := make([]byte, Size(sizes...)+1)

	// shift by one byte so the arena has to pad before the first block
	for _, mem := range [][]byte{backing[:len(backing)-1], backing[1:]} {
		a := New(mem)
		var lens, caps []int
		for _, s := range sizes {
			b := a.Alloc(s)
			if addr(b)%Alignment != 0 {
				t.Fatalf("allocation of %d bytes at %#x is not aligned", s, addr(b))
			}
			lens = append(lens, len(b))
			caps = append(caps, cap(b))
		}
		if diff := cmp.Diff([]int{3, 16, 1}, lens); diff != "" {
			t.Errorf("lengths mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{8, 16, 8}, caps); diff != "" {
			t.Errorf("capacities mismatch (-want +got):\n%s", diff)
		}
		if a.Len() > a.Cap() {
			t.Fatalf("arena overrun: %d > %d", a.Len(), a.Cap())
		}
	}
}

func TestReset(t *testing.T) {
	a := New(make([]byte, Size(8, 8)))
	first := a.Alloc(8)
	used := a.Len()
	a.Alloc(8)

	a.Reset()
	if got := a.Len(); got != used-8 {
		t.Fatalf("Len after Reset = %d, want %d", got, used-8)
	}
	again := a.Alloc(8)
	if addr(first) != addr(again) {
		t.Fatal("Reset must hand out the same memory again")
	}
}

func TestAllocOverflow(t *testing.T) {
	a := New(make([]byte, 16))
	a.Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on arena overflow")
		}
	}()
	a.Alloc(a.Cap() - a.Len() + 1)
}

func TestAllocNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative size")
		}
	}()
	New(make([]byte, 16)).Alloc(-1)
}
