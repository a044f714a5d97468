// Package vm is a minimal host for hint routines: relocatable addresses,
// write-once segmented memory and a frame that resolves operand names.
package vm

import (
	"errors"
	"fmt"

	"github.com/yourorg/mmrhints/pkg/felt"
)

var (
	ErrWriteConflict  = errors.New("vm: write conflict")
	ErrUnknownSegment = errors.New("vm: unknown segment")
	ErrUnsetAddress   = errors.New("vm: address holds no value")
)

// Relocatable is an address inside a memory segment.
type Relocatable struct {
	Segment int
	Offset  uint64
}

func (r Relocatable) Add(n uint64) Relocatable {
	return Relocatable{Segment: r.Segment, Offset: r.Offset + n}
}

func (r Relocatable) String() string {
	return fmt.Sprintf("%d:%d", r.Segment, r.Offset)
}

// MaybeRelocatable is the content of a memory cell: a field element or a
// pointer into another segment.
type MaybeRelocatable struct {
	val   felt.Felt
	ptr   Relocatable
	isPtr bool
}

func Int(v felt.Felt) MaybeRelocatable { return MaybeRelocatable{val: v} }

func Uint(v uint64) MaybeRelocatable { return Int(felt.FromUint64(v)) }

func Ptr(r Relocatable) MaybeRelocatable { return MaybeRelocatable{ptr: r, isPtr: true} }

func (m MaybeRelocatable) IsPtr() bool { return m.isPtr }

// Felt returns the integer value, false if m is a pointer.
func (m MaybeRelocatable) Felt() (felt.Felt, bool) {
	return m.val, !m.isPtr
}

// Relocatable returns the pointer value, false if m is an integer.
func (m MaybeRelocatable) Relocatable() (Relocatable, bool) {
	return m.ptr, m.isPtr
}

func (m MaybeRelocatable) Equal(o MaybeRelocatable) bool {
	if m.isPtr != o.isPtr {
		return false
	}
	if m.isPtr {
		return m.ptr == o.ptr
	}
	return m.val.Equal(&o.val)
}

func (m MaybeRelocatable) String() string {
	if m.isPtr {
		return m.ptr.String()
	}
	return m.val.String()
}

// WriteConflictError reports a write to a cell that already holds a
// different value.
type WriteConflictError struct {
	Addr     Relocatable
	Old, New MaybeRelocatable
}

func (e *WriteConflictError) Error() string {
	return fmt.Sprintf("vm: write conflict at %s: holds %s, got %s", e.Addr, e.Old, e.New)
}

func (e *WriteConflictError) Unwrap() error { return ErrWriteConflict }

type cell struct {
	v   MaybeRelocatable
	set bool
}

// Memory is write-once: a cell may be written again only with the value it
// already holds.
type Memory struct {
	segments [][]cell
}

func NewMemory() *Memory { return &Memory{} }

// AddSegment allocates an empty segment and returns its base address.
func (m *Memory) AddSegment() Relocatable {
	m.segments = append(m.segments, nil)
	return Relocatable{Segment: len(m.segments) - 1}
}

func (m *Memory) NumSegments() int { return len(m.segments) }

// SegmentSize is one past the highest written offset of the segment.
func (m *Memory) SegmentSize(segment int) (uint64, error) {
	if segment < 0 || segment >= len(m.segments) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSegment, segment)
	}
	return uint64(len(m.segments[segment])), nil
}

func (m *Memory) Insert(addr Relocatable, v MaybeRelocatable) error {
	if addr.Segment < 0 || addr.Segment >= len(m.segments) {
		return fmt.Errorf("%w: %s", ErrUnknownSegment, addr)
	}
	seg := m.segments[addr.Segment]
	if addr.Offset >= uint64(len(seg)) {
		grown := make([]cell, addr.Offset+1)
		copy(grown, seg)
		seg = grown
		m.segments[addr.Segment] = seg
	}
	c := &seg[addr.Offset]
	if c.set {
		if !c.v.Equal(v) {
			return &WriteConflictError{Addr: addr, Old: c.v, New: v}
		}
		return nil
	}
	c.v, c.set = v, true
	return nil
}

func (m *Memory) Get(addr Relocatable) (MaybeRelocatable, error) {
	if addr.Segment < 0 || addr.Segment >= len(m.segments) {
		return MaybeRelocatable{}, fmt.Errorf("%w: %s", ErrUnknownSegment, addr)
	}
	seg := m.segments[addr.Segment]
	if addr.Offset >= uint64(len(seg)) || !seg[addr.Offset].set {
		return MaybeRelocatable{}, fmt.Errorf("%w: %s", ErrUnsetAddress, addr)
	}
	return seg[addr.Offset].v, nil
}

// LoadData writes vals to consecutive cells starting at addr and returns
// the address following the last one.
func (m *Memory) LoadData(addr Relocatable, vals []MaybeRelocatable) (Relocatable, error) {
	for i, v := range vals {
		if err := m.Insert(addr.Add(uint64(i)), v); err != nil {
			return addr, err
		}
	}
	return addr.Add(uint64(len(vals))), nil
}

// Range reads n consecutive cells starting at addr.
func (m *Memory) Range(addr Relocatable, n uint64) ([]MaybeRelocatable, error) {
	out := make([]MaybeRelocatable, n)
	for i := uint64(0); i < n; i++ {
		v, err := m.Get(addr.Add(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
