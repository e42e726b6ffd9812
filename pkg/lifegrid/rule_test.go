package lifegrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStateTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		t.Run(fmt.Sprintf("alive/%d", n), func(t *testing.T) {
			assert.Equal(t, n == 2 || n == 3, NextState(true, n))
		})
		t.Run(fmt.Sprintf("dead/%d", n), func(t *testing.T) {
			assert.Equal(t, n == 3, NextState(false, n))
		})
	}
}

func BenchmarkAdvance(b *testing.B) {
	var x uint32 = 2463534242
	g, err := NewPacked(128, 128, func() uint32 {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		return x
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Advance()
	}
}
