package tetris

import "math/rand/v2"

// QueueLen is the number of slots in the piece queue.
const QueueLen = int(pieceTypeCount)

// exposedSlots are shown to the player (current, next, next-next) and are
// never reordered once visible.
const exposedSlots = 3

// Bag is the piece queue. It always holds a permutation of all seven
// types; slot 0 is the current draw.
//
// Each aligned run of seven draws contains every type exactly once.
type Bag struct {
	rng   *rand.Rand
	queue [QueueLen]PieceType
	draws int
}

// NewBag creates a shuffled bag drawing randomness from src.
func NewBag(src rand.Source) *Bag {
	return newBag(rand.New(src))
}

func newBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.Reset()
	return b
}

// Reset refills the queue with a fresh shuffled permutation.
func (b *Bag) Reset() {
	b.queue = PieceTypes()
	b.shuffle(b.queue[:])
	b.draws = 0
}

// Current returns the type in slot 0.
func (b *Bag) Current() PieceType {
	return b.queue[0]
}

// Peek returns the type i slots after the current one.
func (b *Bag) Peek(i int) PieceType {
	return b.queue[i]
}

// Queue returns a copy of all slots.
func (b *Bag) Queue() [QueueLen]PieceType {
	return b.queue
}

// Draws returns how many times the bag has advanced since Reset.
func (b *Bag) Draws() int {
	return b.draws
}

// Advance pops slot 0 and appends it at the back.
//
// Hidden slots that hold types already drawn in the current run of seven
// are reshuffled on every draw. Those types make up the next run, so
// every position of it is randomized while the exposed slots keep their
// order.
func (b *Bag) Advance() {
	popped := b.queue[0]
	copy(b.queue[:], b.queue[1:])
	b.queue[QueueLen-1] = popped

	b.draws++
	drawn := b.draws % QueueLen
	if drawn == 0 {
		drawn = QueueLen
	}
	b.shuffle(b.queue[max(exposedSlots, QueueLen-drawn):])
}

// shuffle is an in-place Fisher–Yates shuffle.
func (b *Bag) shuffle(s []PieceType) {
	for i := len(s) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// IsPermutation reports whether q holds each piece type exactly once.
func IsPermutation(q []PieceType) bool {
	if len(q) != QueueLen {
		return false
	}
	var seen [pieceTypeCount]bool
	for _, t := range q {
		if t >= pieceTypeCount || seen[t] {
			return false
		}
		seen[t] = true
	}
	return true
}
