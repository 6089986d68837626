// Package sim plays many seeded sessions headlessly with random input,
// checks engine invariants after every tick and summarizes the scores.
package sim

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// toggleOdds is the per-tick chance, out of 1000, that the bot flips a
// key between up and down.
var toggleOdds = [...]struct {
	action core.Action
	odds   int
}{
	{core.ActionLeft, 40},
	{core.ActionRight, 40},
	{core.ActionRotate, 30},
	{core.ActionSoftDrop, 15},
	{core.ActionHardDrop, 8},
	{core.ActionHold, 4},
	{core.ActionRestart, 50},
}

// Bot produces random key levels. The same seed yields the same keys.
type Bot struct {
	rng  *rand.Rand
	down core.ActionSet
}

// NewBot creates a bot seeded independently of the piece bag.
func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewPCG(uint64(seed), 0x5eed))}
}

// Next returns the keys held during the next tick.
func (b *Bot) Next() core.ActionSet {
	for _, t := range toggleOdds {
		if b.rng.IntN(1000) >= t.odds {
			continue
		}
		if b.down.Has(t.action) {
			b.down = b.down.Without(t.action)
		} else {
			b.down = b.down.With(t.action)
		}
	}
	return b.down
}
