package words

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand/v2"

	"github.com/robalobadob/wordmatch/internal/match"
)

// ErrNoPairs is returned when a round is requested from an empty list.
var ErrNoPairs = errors.New("words: no pairs to build a round from")

// Round is one game's words: Canonical holds the true translations and
// Display the same source words with the target column shuffled. Display is
// what the matching surface shows; Canonical is only read for grading.
type Round struct {
	Canonical match.WordMapping `json:"-"`
	Display   match.WordMapping `json:"mapping"`
}

// NewRound picks n pairs from list and shuffles their targets with rng.
// n <= 0 or n > len(list) uses every pair.
func NewRound(list []match.Pair, n int, rng *rand.Rand) (Round, error) {
	if len(list) == 0 {
		return Round{}, ErrNoPairs
	}
	if n <= 0 || n > len(list) {
		n = len(list)
	}

	picked := make([]match.Pair, n)
	for i, j := range rng.Perm(len(list))[:n] {
		picked[i] = list[j]
	}

	targets := make([]string, n)
	for i, p := range picked {
		targets[i] = p.Target
	}
	rng.Shuffle(n, func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })

	display := make([]match.Pair, n)
	for i, p := range picked {
		display[i] = match.Pair{Source: p.Source, Target: targets[i]}
	}

	canonical, err := match.NewWordMapping(picked...)
	if err != nil {
		return Round{}, err
	}
	shown, err := match.NewWordMapping(display...)
	if err != nil {
		return Round{}, err
	}
	return Round{Canonical: canonical, Display: shown}, nil
}

// RandomSource returns a PCG generator seeded from crypto/rand.
func RandomSource() *rand.Rand {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}

// SeededSource returns a deterministic generator, e.g. for the daily round.
func SeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
