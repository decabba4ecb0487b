package blockfall

import "math/rand"

// Randomizer produces the stream of piece kinds fed into the queue.
// A game holds exactly one source for its whole lifetime, so replays are
// reproducible from the seed (or the script) alone.
type Randomizer interface {
	Next() Kind
}

// uniformRandomizer draws kinds independently and uniformly from the
// catalog. There is no bag and no history: streaks and droughts happen.
type uniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer returns the default piece source, seeded with the
// given value.
func NewUniformRandomizer(seed int64) Randomizer {
	return &uniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

func (u *uniformRandomizer) Next() Kind {
	return Kind(u.rng.Intn(KindCount))
}

// ScriptedRandomizer replays a fixed sequence of kinds, cycling back to
// the start when exhausted. Tests use it to stage exact piece orders.
type ScriptedRandomizer struct {
	kinds []Kind
	next  int
}

// NewScriptedRandomizer builds a cycling source from the given kinds.
func NewScriptedRandomizer(kinds ...Kind) *ScriptedRandomizer {
	if len(kinds) == 0 {
		panic("blockfall: scripted randomizer needs at least one kind")
	}
	return &ScriptedRandomizer{kinds: kinds}
}

func (s *ScriptedRandomizer) Next() Kind {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return k
}
