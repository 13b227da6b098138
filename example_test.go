package parallelhash_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/codahale/parallelhash"
)

func Example() {
	// Hash a message in 8KiB blocks, with a customization string for domain separation.
	h, err := parallelhash.New([]byte("com.example.files"), 8192)
	if err != nil {
		panic(err)
	}

	// Write the message in pieces of any size.
	_, _ = io.WriteString(h, "hello")
	_, _ = io.WriteString(h, " world")

	// Finalize with a 64-byte digest. The Hasher can't be used afterwards.
	digest := h.Finalize(nil, 64)

	// The same message in a single write produces the same digest.
	same, err := parallelhash.Sum128([]byte("com.example.files"), []byte("hello world"), 8192, 64)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(digest), bytes.Equal(digest, same))
	// Output: 64 true
}

func ExampleWithConcurrency() {
	message := bytes.Repeat([]byte("a large message "), 1<<16)

	// Compute leaf digests on up to GOMAXPROCS goroutines.
	parallel, err := parallelhash.Sum128(nil, message, 4096, 32, parallelhash.WithConcurrency(0))
	if err != nil {
		panic(err)
	}

	sequential, err := parallelhash.Sum128(nil, message, 4096, 32)
	if err != nil {
		panic(err)
	}

	fmt.Println(bytes.Equal(parallel, sequential))
	// Output: true
}

func ExampleLeftEncode() {
	fmt.Printf("%x\n", parallelhash.LeftEncode(450000))
	fmt.Printf("%x\n", parallelhash.RightEncode(450000))
	// Output:
	// 0306ddd0
	// 06ddd003
}
