package service

import "fmt"

// UniqueName resolves a save name that does not collide with any existing
// trip name for the user. If base is free it is returned unchanged;
// otherwise " (1)", " (2)", … are appended until a free candidate is found.
//
// The counter starts at 1 and the suffix format is exactly one space, an
// open paren, the integer, a close paren — saved names like "Beach Week (1)"
// are user-visible, so the format is a contract.
func UniqueName(base string, existing map[string]bool) string {
	if !existing[base] {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", base, i)
		if !existing[candidate] {
			return candidate
		}
	}
}
