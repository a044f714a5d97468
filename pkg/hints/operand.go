package hints

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/vm"
)

func address(h Host, name string) (vm.Relocatable, error) {
	addr, err := h.Address(name)
	if err != nil {
		return vm.Relocatable{}, fmt.Errorf("%w %q: %v", ErrUnknownOperand, name, err)
	}
	return addr, nil
}

func read(h Host, name string) (vm.MaybeRelocatable, error) {
	addr, err := address(h, name)
	if err != nil {
		return vm.MaybeRelocatable{}, err
	}
	v, err := h.Get(addr)
	if err != nil {
		return vm.MaybeRelocatable{}, fmt.Errorf("%w %q: %v", ErrUnknownOperand, name, err)
	}
	return v, nil
}

func ReadFelt(h Host, name string) (felt.Felt, error) {
	v, err := read(h, name)
	if err != nil {
		return felt.Felt{}, err
	}
	f, ok := v.Felt()
	if !ok {
		return felt.Felt{}, fmt.Errorf("%w: %s holds %s", ErrExpectedInteger, name, v)
	}
	return f, nil
}

// ReadUint64 reads an integer operand used as a count or index.
func ReadUint64(h Host, name string) (uint64, error) {
	f, err := ReadFelt(h, name)
	if err != nil {
		return 0, err
	}
	n, err := felt.Uint64(f)
	if err != nil {
		return 0, &InvalidValueError{Name: name, Value: f.String(), Reason: "does not fit in 64 bits"}
	}
	return n, nil
}

func ReadPtr(h Host, name string) (vm.Relocatable, error) {
	v, err := read(h, name)
	if err != nil {
		return vm.Relocatable{}, err
	}
	p, ok := v.Relocatable()
	if !ok {
		return vm.Relocatable{}, fmt.Errorf("%w: %s holds %s", ErrExpectedPointer, name, v)
	}
	return p, nil
}

// ReadUint256 reads a two-word integer from name.low and name.high.
func ReadUint256(h Host, name string) (*uint256.Int, error) {
	low, err := ReadFelt(h, name+".low")
	if err != nil {
		return nil, err
	}
	high, err := ReadFelt(h, name+".high")
	if err != nil {
		return nil, err
	}
	v, err := JoinUint256(low, high)
	if err != nil {
		return nil, &InvalidValueError{Name: name, Value: low.String() + "," + high.String(), Reason: "half exceeds 128 bits"}
	}
	return v, nil
}

// readFeltOrConstant reads name as an operand, falling back to a program
// constant of the same name.
func readFeltOrConstant(h Host, name string) (felt.Felt, error) {
	v, err := ReadFelt(h, name)
	if err == nil || !errors.Is(err, ErrUnknownOperand) {
		return v, err
	}
	c, cerr := h.Constant(name)
	if cerr != nil {
		return felt.Felt{}, err
	}
	return c, nil
}

func WriteValue(h Host, name string, v vm.MaybeRelocatable) error {
	addr, err := address(h, name)
	if err != nil {
		return err
	}
	if err := h.Insert(addr, v); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func WriteFelt(h Host, name string, v felt.Felt) error {
	return WriteValue(h, name, vm.Int(v))
}

func writeBool(h Host, name string, b bool) error {
	return WriteFelt(h, name, felt.FromBool(b))
}

func writeFrom(h Host, addr vm.Relocatable, name string, vals []vm.MaybeRelocatable) error {
	for i, v := range vals {
		if err := h.Insert(addr.Add(uint64(i)), v); err != nil {
			return fmt.Errorf("write %s[%d]: %w", name, i, err)
		}
	}
	return nil
}

// WriteStruct stores vals in consecutive cells starting at the operand's
// own address.
func WriteStruct(h Host, name string, vals []vm.MaybeRelocatable) error {
	addr, err := address(h, name)
	if err != nil {
		return err
	}
	return writeFrom(h, addr, name, vals)
}

// WriteVector stores vals starting at the address the operand points to.
func WriteVector(h Host, name string, vals []vm.MaybeRelocatable) error {
	ptr, err := ReadPtr(h, name)
	if err != nil {
		return err
	}
	return writeFrom(h, ptr, name, vals)
}

// WriteUint256 stores v as a low/high struct at the operand's address.
func WriteUint256(h Host, name string, v *uint256.Int) error {
	low, high := SplitUint256(v)
	return WriteStruct(h, name, []vm.MaybeRelocatable{vm.Int(low), vm.Int(high)})
}

// WriteAP stores v at ap+offset.
func WriteAP(h Host, offset uint64, v felt.Felt) error {
	addr := h.AP().Add(offset)
	if err := h.Insert(addr, vm.Int(v)); err != nil {
		return fmt.Errorf("write ap+%d: %w", offset, err)
	}
	return nil
}

func SplitUint256(v *uint256.Int) (low, high felt.Felt) {
	return felt.Split128(v)
}

func JoinUint256(low, high felt.Felt) (*uint256.Int, error) {
	v, err := felt.Join128(low, high)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	return v, nil
}
