// internal/words/words.go
//
// Word pair source for matching rounds.
//
// Responsibilities:
//   - Load english → french pairs from an environment-provided file or fall
//     back to the embedded default list.
//   - Build rounds: pick N pairs and shuffle the target column so row i no
//     longer shows the translation of row i.
//
// Initialization behavior (Init):
//   1. If WORDS_PAIRS_FILE is set, load "english<TAB>french" lines from it.
//   2. Otherwise use assets/pairs.tsv.
//
// Constraints:
//   • Source words are unique, and so are target words; later duplicates are dropped.
//   • Initialization is run once (sync.Once).

package words

import (
	"errors"
	"os"
	"sync"

	"github.com/robalobadob/wordmatch/assets"
	"github.com/robalobadob/wordmatch/internal/match"
)

var (
	initOnce   sync.Once
	pairs      []match.Pair
	initialErr error
)

// Init loads the pair list exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var raw [][2]string
		var err error
		if path := os.Getenv("WORDS_PAIRS_FILE"); path != "" {
			raw, err = readPairFile(path)
		} else {
			raw, err = assets.DefaultPairs()
		}
		if err != nil {
			initialErr = err
			return
		}
		pairs = dedupe(raw)
		if len(pairs) == 0 {
			initialErr = errors.New("words: pair list is empty")
		}
	})
	return initialErr
}

func readPairFile(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadPairs(f)
}

// dedupe keeps the first occurrence of every source and every target word.
func dedupe(raw [][2]string) []match.Pair {
	seenSrc := make(map[string]struct{}, len(raw))
	seenTgt := make(map[string]struct{}, len(raw))
	out := make([]match.Pair, 0, len(raw))
	for _, p := range raw {
		if _, ok := seenSrc[p[0]]; ok {
			continue
		}
		if _, ok := seenTgt[p[1]]; ok {
			continue
		}
		seenSrc[p[0]] = struct{}{}
		seenTgt[p[1]] = struct{}{}
		out = append(out, match.Pair{Source: p[0], Target: p[1]})
	}
	return out
}

// Pairs returns a copy of the loaded pairs.
func Pairs() []match.Pair {
	out := make([]match.Pair, len(pairs))
	copy(out, pairs)
	return out
}

// Stats returns the number of loaded pairs.
func Stats() int { return len(pairs) }
