package card

import (
	"sort"

	"github.com/google/uuid"
)

// NewAttack returns an empty attack slotted after every existing one.
func NewAttack(existing []Attack) Attack {
	next := 0
	for _, a := range existing {
		if a.SortOrder >= next {
			next = a.SortOrder + 1
		}
	}
	return Attack{ID: uuid.NewString(), SortOrder: next}
}

// SortedAttacks returns a copy ordered by SortOrder. Render code must
// use this rather than raw array order.
func SortedAttacks(attacks []Attack) []Attack {
	out := make([]Attack, len(attacks))
	copy(out, attacks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// MoveAttack swaps the attack at index i with its neighbor in the given
// direction (-1 up, +1 down). Array position and SortOrder swap
// together as one atomic operation, so render order follows.
func MoveAttack(attacks []Attack, i, dir int) {
	j := i + dir
	if i < 0 || i >= len(attacks) || j < 0 || j >= len(attacks) {
		return
	}
	attacks[i].SortOrder, attacks[j].SortOrder = attacks[j].SortOrder, attacks[i].SortOrder
	attacks[i], attacks[j] = attacks[j], attacks[i]
}

// RemoveAttack deletes the attack with the given id and renumbers the
// remainder 0..n-1 preserving relative order.
func RemoveAttack(attacks []Attack, id string) []Attack {
	out := attacks[:0]
	for _, a := range attacks {
		if a.ID != id {
			out = append(out, a)
		}
	}
	RenumberAttacks(out)
	return out
}

// RenumberAttacks reassigns contiguous sort orders, keeping the current
// relative order and guaranteeing uniqueness.
func RenumberAttacks(attacks []Attack) {
	idx := make([]int, len(attacks))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return attacks[idx[a]].SortOrder < attacks[idx[b]].SortOrder
	})
	for pos, i := range idx {
		attacks[i].SortOrder = pos
	}
}
