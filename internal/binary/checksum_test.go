package binary

import "testing"

func TestLookup3Empty(t *testing.T) {
	// Empty input skips the final mix and returns the seed directly.
	if got := Lookup3(nil); got != 0xdeadbeef {
		t.Errorf("Lookup3(nil) = 0x%08x, want 0xdeadbeef", got)
	}
}

func TestLookup3Deterministic(t *testing.T) {
	inputs := [][]byte{
		{0x00},
		[]byte("hello"),
		[]byte("Hello World!"),  // exactly one block
		[]byte("Hello World!!"), // block + 1-byte tail
	}
	for _, in := range inputs {
		if a, b := Lookup3(in), Lookup3(in); a != b {
			t.Errorf("Lookup3(%q) not deterministic: 0x%08x vs 0x%08x", in, a, b)
		}
	}
}

func TestLookup3LengthSensitivity(t *testing.T) {
	// Prefixes of the same byte sequence must all hash differently; the
	// seed folds the length in, so even all-zero inputs diverge.
	seen := make(map[uint32]int)
	for length := 0; length <= 24; length++ {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(i)
		}
		sum := Lookup3(data)
		if prev, dup := seen[sum]; dup {
			t.Errorf("lengths %d and %d collide on 0x%08x", prev, length, sum)
		}
		seen[sum] = length
	}
}

func TestLookup3TailBoundary(t *testing.T) {
	// 12 bytes is a tail (finalized), 13 bytes is a block plus tail; the
	// 12-byte prefix must not hash equal under both paths.
	data := make([]byte, 13)
	for i := range data {
		data[i] = byte(i + 1)
	}
	if Lookup3(data[:12]) == Lookup3(data) {
		t.Error("12- and 13-byte inputs unexpectedly collide")
	}
}

func BenchmarkLookup3(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Lookup3(data)
	}
}
