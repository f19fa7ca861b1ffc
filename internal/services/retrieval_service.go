package services

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"aarav/internal/infra"
)

// StoryDoc is one retrievable narrative snippet.
type StoryDoc struct {
	Title string
	Place string
	Text  string
}

// RetrievalServiceInterface ranks story snippets against a free-text query
// with term-frequency cosine similarity. Only strictly positive scores are
// returned, so a query sharing no vocabulary with the corpus yields nothing.
type RetrievalServiceInterface interface {
	Retrieve(query string, k int) []StoryDoc
	ContextText(query string, k int) string
}

var tokenRe = regexp.MustCompile(`[a-zA-Z']+`)

type scoredDoc struct {
	doc    StoryDoc
	vector map[string]float64
	norm   float64
}

type tfRetrievalService struct {
	docs []scoredDoc
}

func NewRetrievalService(dataset *infra.Dataset) RetrievalServiceInterface {
	svc := &tfRetrievalService{}
	for _, s := range dataset.Stories {
		doc := StoryDoc{Title: s.Title, Place: s.Place, Text: s.Text}
		vec := termVector(doc.Title + " " + doc.Place + " " + doc.Text)
		svc.docs = append(svc.docs, scoredDoc{doc: doc, vector: vec, norm: vectorNorm(vec)})
	}
	return svc
}

func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

func termVector(text string) map[string]float64 {
	vec := make(map[string]float64)
	for _, tok := range tokenize(text) {
		vec[tok]++
	}
	return vec
}

func vectorNorm(vec map[string]float64) float64 {
	var sum float64
	for _, f := range vec {
		sum += f * f
	}
	return math.Sqrt(sum)
}

func cosine(a map[string]float64, aNorm float64, b map[string]float64, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for tok, f := range a {
		dot += f * b[tok]
	}
	return dot / (aNorm * bNorm)
}

func (s *tfRetrievalService) Retrieve(query string, k int) []StoryDoc {
	if k <= 0 {
		return nil
	}
	qVec := termVector(query)
	qNorm := vectorNorm(qVec)

	type hit struct {
		doc   StoryDoc
		score float64
	}
	var hits []hit
	for _, d := range s.docs {
		score := cosine(qVec, qNorm, d.vector, d.norm)
		if score > 0 {
			hits = append(hits, hit{doc: d.doc, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]StoryDoc, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.doc)
	}
	return out
}

// ContextText renders the top hits as "[Title]\nbody" blocks for prompt
// grounding. Empty string means no relevant snippet was found.
func (s *tfRetrievalService) ContextText(query string, k int) string {
	docs := s.Retrieve(query, k)
	blocks := make([]string, 0, len(docs))
	for _, d := range docs {
		blocks = append(blocks, "["+d.Title+"]\n"+d.Text)
	}
	return strings.Join(blocks, "\n\n")
}
