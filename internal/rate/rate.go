package rate

import "math"

// Charged is the membership check against the charged-word lexicon.
type Charged interface {
	Contains(word string) bool
}

// Jaundice computes the sensationalism score for a tokenized article: the
// percentage of tokens whose normalized form belongs to the charged-word
// set, rounded to two decimals. An empty token list scores 0.
func Jaundice(tokens []string, lexicon Charged) float64 {
	if len(tokens) == 0 || lexicon == nil {
		return 0
	}

	charged := 0
	for _, token := range tokens {
		if lexicon.Contains(token) {
			charged++
		}
	}

	score := 100 * float64(charged) / float64(len(tokens))
	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
