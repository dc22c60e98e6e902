// SPDX-License-Identifier: MIT

package dielectric

import (
	"fmt"
	"math"
	"strings"
)

// Kernel selects the analytic form of the rod's Fourier coefficient.
type Kernel int

const (
	// KernelSinc is (εr − 1)·2f·sinc(|G|r)/(π|G|²) with normalized sinc.
	KernelSinc Kernel = iota

	// KernelBessel is the exact disk transform (εr − 1)·2f·J1(x)/x, x = 2π|G|r.
	KernelBessel
)

// String returns the lowercase keyword of k.
func (k Kernel) String() string {
	switch k {
	case KernelSinc:
		return "sinc"
	case KernelBessel:
		return "bessel"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// ParseKernel maps "sinc" or "bessel" (case-insensitive) to a Kernel.
// The empty string is rejected.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sinc":
		return KernelSinc, nil
	case "bessel", "j1":
		return KernelBessel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kernel) MarshalText() ([]byte, error) {
	if k != KernelSinc && k != KernelBessel {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKernel, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKernel.
func (k *Kernel) UnmarshalText(text []byte) error {
	parsed, err := ParseKernel(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Sinc is the normalized sinc, sin(πx)/(πx), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x

	return math.Sin(px) / px
}

// besselForm returns J1(x)/x with its limit ½ at x = 0.
func besselForm(x float64) float64 {
	if x == 0 {
		return 0.5
	}

	return math.J1(x) / x
}
