// Package recommend ranks articles by textual similarity. It is a pure
// in-memory scorer over a small candidate pool: TF-IDF vectors over
// title, body, and keywords, compared by cosine similarity.
package recommend

import (
	"math"
	"sort"
	"strings"
)

const (
	// maxFeatures caps the vocabulary; the most document-frequent terms win.
	maxFeatures = 50

	// minScore filters out near-orthogonal candidates.
	minScore = 0.01

	defaultLimit = 5
)

// Document is one scoring candidate.
type Document struct {
	ID       string
	Title    string
	Body     string
	Keywords []string
}

// Match is one ranked recommendation.
type Match struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Rank scores every pool document against the target and returns the
// best matches in descending score order. The target itself is excluded
// by ID. A pool holding nothing but the target yields nothing; a single
// remaining candidate is still scored and can be recommended.
func Rank(target Document, pool []Document, limit int) []Match {
	if limit <= 0 {
		limit = defaultLimit
	}

	candidates := make([]Document, 0, len(pool))
	for _, d := range pool {
		if d.ID == target.ID {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return nil
	}

	docs := append([]Document{target}, candidates...)
	terms := make([]map[string]int, len(docs))
	for i, d := range docs {
		terms[i] = termCounts(d)
	}

	vocab := buildVocabulary(terms)
	idf := inverseDocFrequency(terms, vocab)

	vectors := make([][]float64, len(docs))
	for i := range docs {
		vectors[i] = vectorize(terms[i], vocab, idf)
	}

	matches := make([]Match, 0, len(candidates))
	for i, d := range candidates {
		score := cosine(vectors[0], vectors[i+1])
		if score <= minScore {
			continue
		}
		matches = append(matches, Match{ID: d.ID, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func termCounts(d Document) map[string]int {
	counts := make(map[string]int)
	for _, tok := range tokenize(d.Title + " " + d.Body) {
		counts[tok]++
	}
	// Keywords are curated; they count double so they dominate noise
	// from the body text.
	for _, kw := range d.Keywords {
		for _, tok := range tokenize(kw) {
			counts[tok] += 2
		}
	}
	return counts
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// buildVocabulary keeps the maxFeatures terms seen in the most
// documents. Ties break alphabetically so vectors are deterministic.
func buildVocabulary(terms []map[string]int) []string {
	docFreq := make(map[string]int)
	for _, t := range terms {
		for term := range t {
			docFreq[term]++
		}
	}

	vocab := make([]string, 0, len(docFreq))
	for term := range docFreq {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if docFreq[vocab[i]] != docFreq[vocab[j]] {
			return docFreq[vocab[i]] > docFreq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

func inverseDocFrequency(terms []map[string]int, vocab []string) []float64 {
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0
		for _, t := range terms {
			if t[term] > 0 {
				df++
			}
		}
		// Smoothed so terms present in every document keep a small
		// positive weight instead of vanishing.
		idf[i] = math.Log(float64(1+len(terms))/float64(1+df)) + 1
	}
	return idf
}

func vectorize(counts map[string]int, vocab []string, idf []float64) []float64 {
	total := 0
	for _, n := range counts {
		total += n
	}
	vec := make([]float64, len(vocab))
	if total == 0 {
		return vec
	}
	for i, term := range vocab {
		vec[i] = float64(counts[term]) / float64(total) * idf[i]
	}
	return vec
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
