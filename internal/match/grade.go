package match

import "math"

// Score is the result of grading an answer against the canonical pairs.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Grade counts answer entries equal to the canonical target and returns the
// rounded percentage. Total is the canonical size; extra answer keys are ignored.
func Grade(canonical, answer WordMapping) Score {
	sc := Score{Total: canonical.Len()}
	if sc.Total == 0 {
		return sc
	}
	for _, src := range canonical.keys {
		want, ok := canonical.Get(src)
		if !ok {
			continue
		}
		if got, set := answer.Get(src); set && got == want {
			sc.Correct++
		}
	}
	sc.Percent = int(math.Round(100 * float64(sc.Correct) / float64(sc.Total)))
	return sc
}
