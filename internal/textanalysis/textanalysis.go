// Package textanalysis holds optional free-text helpers. Nothing in the keyword
// analysis flow depends on it; it is only reachable through /api/text/*.
package textanalysis

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Tokenize splits text into word tokens.
func Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out, nil
}

// Clean lowercases text and keeps only alphabetic tokens that are not English stopwords.
func Clean(text string) ([]string, error) {
	tokens, err := Tokenize(strings.ToLower(text))
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isAlpha(tok) {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

// Polarity scores text in [-1, 1]. Negative is unfavourable, 0 is neutral or unknown.
// Each opinion word contributes its lexicon score, scaled by a preceding
// intensifier and flipped (at half strength) by a preceding negation.
func Polarity(text string) (float64, error) {
	tokens, err := Tokenize(strings.ToLower(text))
	if err != nil {
		return 0, err
	}

	var sum float64
	var n int
	for i, tok := range tokens {
		score, ok := lexicon[tok]
		if !ok {
			continue
		}

		for j := i - 1; j >= 0 && j >= i-2; j-- {
			prev := tokens[j]
			if factor, ok := intensifiers[prev]; ok {
				score *= factor
				continue
			}
			if _, ok := negations[prev]; ok {
				score *= -0.5
			}
			break
		}

		sum += score
		n++
	}

	if n == 0 {
		return 0, nil
	}
	return clamp(sum/float64(n), -1, 1), nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
