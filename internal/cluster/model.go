// Package cluster groups free-text documents into categories with TF-IDF vectors
// and k-means.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// ErrTooFewDocuments is returned when training on fewer than two documents.
var ErrTooFewDocuments = errors.New("need at least 2 documents")

// Options configures training.
type Options struct {
	// MaxFeatures keeps only the most frequent terms of the corpus.
	MaxFeatures int
	// Clusters is the number of groups; fewer are used when there are fewer documents.
	Clusters int
	Seed     uint64
	MaxIter  int
	// Restarts is the number of k-means runs from different seeds; the run with the
	// lowest inertia wins.
	Restarts int
}

// DefaultOptions mirrors the categorizer's historic settings.
func DefaultOptions() Options {
	return Options{MaxFeatures: 1000, Clusters: 10, Seed: 42, MaxIter: 300, Restarts: 10}
}

// Model is a trained vectorizer plus cluster centroids.
type Model struct {
	Vocabulary []string    `bson:"vocabulary" json:"vocabulary"`
	IDF        []float64   `bson:"idf" json:"idf"`
	Centroids  [][]float64 `bson:"centroids" json:"centroids"`

	index map[string]int
}

// Label names cluster n the way categories are stored.
func Label(n int) string {
	return fmt.Sprintf("Category_%d", n)
}

// Train fits a model on docs and returns it with the cluster of every document.
func Train(docs []string, opts Options) (*Model, []int, error) {
	if len(docs) < 2 {
		return nil, nil, ErrTooFewDocuments
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = 300
	}
	if opts.Restarts <= 0 {
		opts.Restarts = 1
	}

	tokenized := make([][]string, len(docs))
	for i, d := range docs {
		tokenized[i] = Tokens(d)
	}

	m := &Model{}
	m.fitVocabulary(tokenized, opts.MaxFeatures)

	vectors := make([][]float64, len(docs))
	for i, toks := range tokenized {
		vectors[i] = m.vectorize(toks)
	}

	k := min(opts.Clusters, len(docs))
	if k < 1 {
		k = 1
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	var assignments []int
	best := math.Inf(1)
	for run := 0; run < opts.Restarts; run++ {
		centroids := seedCentroids(vectors, k, rng)
		assign := lloyd(vectors, centroids, opts.MaxIter)
		if in := inertia(vectors, centroids, assign); in < best {
			best = in
			m.Centroids = centroids
			assignments = assign
		}
	}

	return m, assignments, nil
}

// Predict returns the cluster closest to doc.
func (m *Model) Predict(doc string) int {
	if len(m.Centroids) == 0 {
		return 0
	}
	return nearest(m.vectorize(Tokens(doc)), m.Centroids)
}

func (m *Model) fitVocabulary(docs [][]string, maxFeatures int) {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	for _, toks := range docs {
		seen := make(map[string]bool, len(toks))
		for _, t := range toks {
			termFreq[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	terms := make([]string, 0, len(termFreq))
	for t := range termFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	m.Vocabulary = terms
	m.IDF = make([]float64, len(terms))
	for i, t := range terms {
		// smoothed idf
		m.IDF[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	m.Prepare()
}

// Prepare builds the term lookup table. Call it once on a decoded model before
// sharing it between goroutines.
func (m *Model) Prepare() {
	m.index = make(map[string]int, len(m.Vocabulary))
	for i, t := range m.Vocabulary {
		m.index[t] = i
	}
}

func (m *Model) vectorize(tokens []string) []float64 {
	if m.index == nil {
		m.Prepare()
	}

	v := make([]float64, len(m.Vocabulary))
	for _, t := range tokens {
		if i, ok := m.index[t]; ok {
			v[i]++
		}
	}

	var norm float64
	for i := range v {
		v[i] *= m.IDF[i]
		norm += v[i] * v[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range v {
			v[i] /= norm
		}
	}
	return v
}

// seedCentroids picks k starting centroids with k-means++.
func seedCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(vectors[rng.IntN(len(vectors))]))

	dist := make([]float64, len(vectors))
	for len(centroids) < k {
		var total float64
		for i, v := range vectors {
			dist[i] = sqDist(v, centroids[nearest(v, centroids)])
			total += dist[i]
		}

		next := rng.IntN(len(vectors))
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range dist {
				target -= d
				if target <= 0 {
					next = i
					break
				}
			}
		}
		centroids = append(centroids, clone(vectors[next]))
	}
	return centroids
}

// lloyd refines centroids in place and returns the final assignment.
func lloyd(vectors, centroids [][]float64, maxIter int) []int {
	assign := make([]int, len(vectors))
	for i := range assign {
		assign[i] = -1
	}

	dim := len(centroids[0])
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, v := range vectors {
			c := nearest(v, centroids)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([][]float64, len(centroids))
		counts := make([]int, len(centroids))
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			c := assign[i]
			counts[c]++
			for j, x := range v {
				sums[c][j] += x
			}
		}
		for c := range centroids {
			// an empty cluster keeps its previous centroid
			if counts[c] == 0 {
				continue
			}
			for j := range sums[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}
	return assign
}

func inertia(vectors, centroids [][]float64, assign []int) float64 {
	var total float64
	for i, v := range vectors {
		total += sqDist(v, centroids[assign[i]])
	}
	return total
}

func nearest(v []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDist(v, centroid); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
