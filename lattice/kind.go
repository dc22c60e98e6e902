// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported 2D Bravais lattices.
type Kind int

const (
	// Square is the simple square lattice (Γ-X-M path).
	Square Kind = iota

	// Triangular is the hexagonal Bravais lattice (Γ-M-K path).
	Triangular
)

// String returns the lowercase keyword of k.
func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Triangular:
		return "triangular"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a lattice keyword to its Kind. Matching is
// case-insensitive; "hexagonal" is accepted for the triangular lattice.
// Unknown keywords return ErrUnsupportedLattice rather than a default.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square":
		return Square, nil
	case "triangular", "hexagonal":
		return Triangular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLattice, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != Square && k != Triangular {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLattice, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
