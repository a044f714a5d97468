package hints

import "github.com/yourorg/mmrhints/pkg/felt"

// leftChildInMMR reports whether left_child is a stored position.
func leftChildInMMR(h Host, _ *Scope) error {
	child, err := ReadFelt(h, "left_child")
	if err != nil {
		return err
	}
	size, err := ReadFelt(h, "mmr_len")
	if err != nil {
		return err
	}
	return writeBool(h, "in_mmr", felt.Cmp(child, size) <= 0)
}

// positionInMMRArray reports whether position lies past the previous
// size, i.e. in the array of newly appended nodes.
func positionInMMRArray(h Host, _ *Scope) error {
	pos, err := ReadFelt(h, "position")
	if err != nil {
		return err
	}
	offset, err := ReadFelt(h, "mmr_offset")
	if err != nil {
		return err
	}
	return writeBool(h, "is_position_in_mmr_array", felt.Cmp(pos, offset) > 0)
}
