// Package hints runs unconstrained helper computations on behalf of a
// proved program. Each routine is keyed by the exact source text of the
// computation it replaces, reads its operands from write-once host memory
// and writes its results back.
package hints

import (
	"fmt"

	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/vm"
)

// Host is what a routine may do to the executing program. *vm.Frame is
// the reference implementation.
type Host interface {
	// Address resolves an operand name, including members such as "x.low".
	Address(name string) (vm.Relocatable, error)
	Get(addr vm.Relocatable) (vm.MaybeRelocatable, error)
	// Insert fails if addr already holds a different value.
	Insert(addr vm.Relocatable, v vm.MaybeRelocatable) error
	// AP is the free-memory cursor.
	AP() vm.Relocatable
	Constant(name string) (felt.Felt, error)
}

var _ Host = (*vm.Frame)(nil)

// Scope carries values from one routine to a later one within a single
// execution.
type Scope struct {
	vals map[string]felt.Felt
}

func NewScope() *Scope {
	return &Scope{vals: make(map[string]felt.Felt)}
}

func (s *Scope) Set(name string, v felt.Felt) { s.vals[name] = v }

func (s *Scope) Get(name string) (felt.Felt, error) {
	v, ok := s.vals[name]
	if !ok {
		return felt.Felt{}, fmt.Errorf("%w: %s", ErrMissingScopeValue, name)
	}
	return v, nil
}
