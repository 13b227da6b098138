// Package cshake implements a one-shot view of cSHAKE128 as specified in [NIST SP 800-185].
//
// An XOF absorbs any number of inputs and is then squeezed exactly once. Absorbing after the squeeze, or squeezing
// twice, panics.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package cshake

import (
	"slices"

	"golang.org/x/crypto/sha3"
)

// Rate is the cSHAKE128 rate in bytes (200 - 32).
const Rate = 168

// XOF is a cSHAKE128 instance.
type XOF struct {
	h        sha3.ShakeHash
	squeezed bool
}

// New returns a cSHAKE128 instance with the given function name and customization string. When both are empty, the
// instance is equivalent to SHAKE128.
func New(functionName, customization []byte) *XOF {
	return &XOF{h: sha3.NewCShake128(functionName, customization)}
}

// Absorb appends p to the instance's input. It must not be called after Squeeze.
func (x *XOF) Absorb(p []byte) {
	if x.squeezed {
		panic("cshake: cannot absorb after squeeze")
	}
	_, _ = x.h.Write(p)
}

// Squeeze finalizes the instance, appends n bytes of output to dst, and returns the resulting slice.
func (x *XOF) Squeeze(dst []byte, n int) []byte {
	if x.squeezed {
		panic("cshake: cannot squeeze twice")
	}
	if n < 0 {
		panic("cshake: n cannot be negative")
	}
	x.squeezed = true

	ret := slices.Grow(dst, n)[:len(dst)+n]
	_, _ = x.h.Read(ret[len(dst):])
	return ret
}

// Clone returns an independent copy of an unsqueezed instance.
func (x *XOF) Clone() *XOF {
	if x.squeezed {
		panic("cshake: cannot clone after squeeze")
	}
	return &XOF{h: x.h.Clone()}
}

// Reset restores the instance to the state it had immediately after New, retaining the function name and
// customization string.
func (x *XOF) Reset() {
	x.h.Reset()
	x.squeezed = false
}
