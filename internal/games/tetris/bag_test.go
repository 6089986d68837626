package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagStartsAsPermutation(t *testing.T) {
	for seed := range uint64(50) {
		b := NewBag(rand.NewPCG(seed, 0))
		q := b.Queue()
		assert.True(t, IsPermutation(q[:]), "seed %d: %v", seed, q)
	}
}

func TestBagQueueAlwaysPermutation(t *testing.T) {
	b := NewBag(rand.NewPCG(3, 4))
	for i := range 5000 {
		b.Advance()
		q := b.Queue()
		require.True(t, IsPermutation(q[:]), "after %d draws: %v", i+1, q)
	}
}

func TestBagRunsOfSevenArePermutations(t *testing.T) {
	for seed := range uint64(20) {
		b := NewBag(rand.NewPCG(seed, seed))
		for run := range 100 {
			var drawn []PieceType
			for range QueueLen {
				drawn = append(drawn, b.Current())
				b.Advance()
			}
			require.True(t, IsPermutation(drawn), "seed %d run %d: %v", seed, run, drawn)
		}
	}
}

func TestBagExposedSlotsNeverReordered(t *testing.T) {
	b := NewBag(rand.NewPCG(11, 12))
	for range 1000 {
		before := b.Queue()
		b.Advance()
		after := b.Queue()
		assert.Equal(t, before[1], after[0])
		assert.Equal(t, before[2], after[1])
	}
}

func TestBagShufflesAcrossRuns(t *testing.T) {
	b := NewBag(rand.NewPCG(5, 6))

	runs := map[[QueueLen]PieceType]bool{}
	for range 50 {
		var run [QueueLen]PieceType
		for i := range run {
			run[i] = b.Current()
			b.Advance()
		}
		runs[run] = true
	}
	assert.Greater(t, len(runs), 1, "every run produced the same order")
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(NewSource(42))
	b := NewBag(NewSource(42))
	for range 300 {
		require.Equal(t, a.Queue(), b.Queue())
		a.Advance()
		b.Advance()
	}
}

func TestBagReset(t *testing.T) {
	b := NewBag(NewSource(1))
	for range 10 {
		b.Advance()
	}
	b.Reset()

	q := b.Queue()
	assert.Equal(t, 0, b.Draws())
	assert.True(t, IsPermutation(q[:]))
}

func TestBagRunOpeningsVary(t *testing.T) {
	for seed := range uint64(5) {
		b := NewBag(rand.NewPCG(seed, 0))

		openings := map[[exposedSlots]PieceType]bool{}
		for range 200 {
			var opening [exposedSlots]PieceType
			for i := range opening {
				opening[i] = b.Peek(i)
			}
			openings[opening] = true
			for range QueueLen {
				b.Advance()
			}
		}
		assert.Greater(t, len(openings), 20, "seed %d: run openings repeat", seed)
	}
}

func TestBagFirstPieceOfRunVaries(t *testing.T) {
	b := NewBag(rand.NewPCG(8, 9))

	seen := map[PieceType]bool{}
	for range 300 {
		seen[b.Current()] = true
		for range QueueLen {
			b.Advance()
		}
	}
	assert.Len(t, seen, QueueLen)
}
