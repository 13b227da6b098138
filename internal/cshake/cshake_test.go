package cshake_test

import (
	"bytes"
	"testing"

	"github.com/codahale/parallelhash/internal/cshake"
	"golang.org/x/crypto/sha3"
)

func TestXOF_EmptyIsSHAKE128(t *testing.T) {
	t.Parallel()

	msg := []byte("this is a message")

	x := cshake.New(nil, nil)
	x.Absorb(msg[:4])
	x.Absorb(msg[4:])
	got := x.Squeeze(nil, 32)

	want := make([]byte, 32)
	sha3.ShakeSum128(want, msg)

	if !bytes.Equal(got, want) {
		t.Errorf("Squeeze() = %x, want = %x", got, want)
	}
}

func TestXOF_Squeeze(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 31, 32, cshake.Rate, cshake.Rate + 1, 3 * cshake.Rate} {
		x := cshake.New([]byte("name"), []byte("custom"))
		x.Absorb([]byte("input"))

		prefix := []byte("prefix")
		out := x.Squeeze(prefix, n)
		if got, want := len(out), len(prefix)+n; got != want {
			t.Errorf("len(Squeeze(prefix, %d)) = %d, want = %d", n, got, want)
		}
		if !bytes.HasPrefix(out, []byte("prefix")) {
			t.Errorf("Squeeze(prefix, %d) = %x, does not start with prefix", n, out)
		}
	}
}

func TestXOF_Customization(t *testing.T) {
	t.Parallel()

	squeeze := func(n, s string) []byte {
		x := cshake.New([]byte(n), []byte(s))
		x.Absorb([]byte("input"))
		return x.Squeeze(nil, 32)
	}

	a, b, c := squeeze("name", "one"), squeeze("name", "two"), squeeze("other", "one")
	if bytes.Equal(a, b) {
		t.Error("different customization strings produced the same output")
	}
	if bytes.Equal(a, c) {
		t.Error("different function names produced the same output")
	}
}

func TestXOF_Clone(t *testing.T) {
	t.Parallel()

	x := cshake.New([]byte("name"), nil)
	x.Absorb([]byte("shared"))

	y := x.Clone()
	y.Absorb([]byte("diverged"))

	a, b := x.Squeeze(nil, 32), y.Squeeze(nil, 32)
	if bytes.Equal(a, b) {
		t.Error("clone shares state with original")
	}
}

func TestXOF_Reset(t *testing.T) {
	t.Parallel()

	x := cshake.New([]byte("name"), []byte("custom"))
	x.Absorb([]byte("input"))
	a := x.Squeeze(nil, 32)

	x.Reset()
	x.Absorb([]byte("input"))
	b := x.Squeeze(nil, 32)

	if !bytes.Equal(a, b) {
		t.Errorf("Squeeze() after Reset = %x, want = %x", b, a)
	}
}

func TestXOF_Misuse(t *testing.T) {
	t.Parallel()

	for name, f := range map[string]func(x *cshake.XOF){
		"absorb after squeeze": func(x *cshake.XOF) { x.Absorb([]byte("late")) },
		"double squeeze":       func(x *cshake.XOF) { x.Squeeze(nil, 1) },
		"clone after squeeze":  func(x *cshake.XOF) { x.Clone() },
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			x := cshake.New(nil, nil)
			x.Squeeze(nil, 32)

			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			f(x)
		})
	}
}

func BenchmarkXOF(b *testing.B) {
	input := make([]byte, 8192)
	out := make([]byte, 32)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		x := cshake.New(nil, nil)
		x.Absorb(input)
		x.Squeeze(out[:0], 32)
	}
}
