package title

import (
	"github.com/hbollon/go-edlib"
)

// MatchConfidence represents the confidence level of a title match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of matching a wanted title against candidates.
type MatchResult struct {
	Index      int             // Index of the matched candidate, -1 for no match
	Title      string          // The matched candidate title
	Score      float64         // Jaro-Winkler similarity score (0.0-1.0)
	Confidence MatchConfidence // Confidence level based on score
}

// Match finds the best candidate for a wanted title. Jaro-Winkler similarity
// favours shared prefixes, which suits programme titles where the series name
// leads and the episode detail trails. Both sides are normalized with Clean
// first, so diacritics and articles do not affect the score.
func Match(wanted string, candidates []string) MatchResult {
	best := MatchResult{Index: -1, Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleanWanted := Clean(wanted)

	for i, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(cleanWanted, Clean(candidate)))
		if score > best.Score {
			best.Index = i
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		// Below threshold there is no usable match.
		best = MatchResult{Index: -1, Confidence: ConfidenceNone}
	}

	return best
}
