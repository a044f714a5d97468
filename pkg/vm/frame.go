package vm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourorg/mmrhints/pkg/felt"
)

var (
	ErrUnknownName     = errors.New("vm: unknown name")
	ErrUnknownMember   = errors.New("vm: unknown struct member")
	ErrUnknownConstant = errors.New("vm: unknown constant")
	ErrNameTaken       = errors.New("vm: name already bound")
)

// memberOffsets are the field offsets of the two-word integer struct.
var memberOffsets = map[string]uint64{
	"low":  0,
	"high": 1,
}

// Frame binds operand names to addresses. Locals live in their own
// segment and the free-memory cursor (ap) starts at the base of a second
// one, so values written at ap never collide with named operands.
type Frame struct {
	mem       *Memory
	fp        Relocatable
	next      uint64
	ap        Relocatable
	names     map[string]Relocatable
	sizes     map[string]uint64 // locals only; names from Bind are unsized
	constants map[string]felt.Felt
}

func NewFrame(mem *Memory) *Frame {
	return &Frame{
		mem:       mem,
		fp:        mem.AddSegment(),
		ap:        mem.AddSegment(),
		names:     make(map[string]Relocatable),
		sizes:     make(map[string]uint64),
		constants: make(map[string]felt.Felt),
	}
}

func (f *Frame) Memory() *Memory { return f.mem }

// Local reserves size consecutive cells for name and returns their base.
func (f *Frame) Local(name string, size uint64) (Relocatable, error) {
	addr := f.fp.Add(f.next)
	if err := f.Bind(name, addr); err != nil {
		return Relocatable{}, err
	}
	f.sizes[name] = size
	f.next += size
	return addr, nil
}

// Bind makes name refer to addr.
func (f *Frame) Bind(name string, addr Relocatable) error {
	if _, ok := f.names[name]; ok {
		return fmt.Errorf("%w: %s", ErrNameTaken, name)
	}
	f.names[name] = addr
	return nil
}

// Array allocates a fresh segment, stores a pointer to it in a new local
// called name and returns the segment base.
func (f *Frame) Array(name string) (Relocatable, error) {
	base := f.mem.AddSegment()
	addr, err := f.Local(name, 1)
	if err != nil {
		return Relocatable{}, err
	}
	if err := f.mem.Insert(addr, Ptr(base)); err != nil {
		return Relocatable{}, err
	}
	return base, nil
}

// Set reserves a one-cell local for name holding v.
func (f *Frame) Set(name string, v MaybeRelocatable) error {
	addr, err := f.Local(name, 1)
	if err != nil {
		return err
	}
	return f.mem.Insert(addr, v)
}

// Address resolves name, including dotted member access such as "x.low".
// A member must lie inside the cells reserved for a local.
func (f *Frame) Address(name string) (Relocatable, error) {
	if addr, ok := f.names[name]; ok {
		return addr, nil
	}
	base, member, ok := strings.Cut(name, ".")
	if !ok {
		return Relocatable{}, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	addr, ok := f.names[base]
	if !ok {
		return Relocatable{}, fmt.Errorf("%w: %s", ErrUnknownName, base)
	}
	off, ok := memberOffsets[member]
	if !ok {
		return Relocatable{}, fmt.Errorf("%w: %s", ErrUnknownMember, name)
	}
	if size, sized := f.sizes[base]; sized && off >= size {
		return Relocatable{}, fmt.Errorf("%w: %s (%s has %d cells)", ErrUnknownMember, name, base, size)
	}
	return addr.Add(off), nil
}

func (f *Frame) Get(addr Relocatable) (MaybeRelocatable, error) { return f.mem.Get(addr) }

func (f *Frame) Insert(addr Relocatable, v MaybeRelocatable) error { return f.mem.Insert(addr, v) }

func (f *Frame) AP() Relocatable { return f.ap }

// Advance moves ap forward by n cells.
func (f *Frame) Advance(n uint64) { f.ap = f.ap.Add(n) }

func (f *Frame) SetConstant(name string, v felt.Felt) { f.constants[name] = v }

func (f *Frame) Constant(name string) (felt.Felt, error) {
	v, ok := f.constants[name]
	if !ok {
		return felt.Felt{}, fmt.Errorf("%w: %s", ErrUnknownConstant, name)
	}
	return v, nil
}

// Lookup reads the value bound to name.
func (f *Frame) Lookup(name string) (MaybeRelocatable, error) {
	addr, err := f.Address(name)
	if err != nil {
		return MaybeRelocatable{}, err
	}
	return f.mem.Get(addr)
}
