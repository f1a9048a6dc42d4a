package split

import (
	"math"
	"math/rand"

	nlp "morphsplit/nlp/types"
)

// TOLERANCE is the allowed deviation of the proportions' sum from 1
const TOLERANCE = 1e-8

// Proportions of the data assigned to each partition
type Proportions struct {
	Train float64 `yaml:"train"`
	Dev   float64 `yaml:"dev"`
	Test  float64 `yaml:"test"`
}

var DEFAULT_PROPORTIONS = Proportions{0.7, 0.2, 0.1}

func (p Proportions) Sum() float64 {
	return p.Train + p.Dev + p.Test
}

// Validate rejects negative, NaN or infinite proportions and any triple whose
// sum is not 1
func (p Proportions) Validate() error {
	for _, x := range []float64{p.Train, p.Dev, p.Test} {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return &ProportionConfigError{p}
		}
	}
	if !(math.Abs(p.Sum()-1) <= TOLERANCE) {
		return &ProportionConfigError{p}
	}
	return nil
}

// Cut returns the indices splitting n shuffled items: [0,i1) is train,
// [i1,i2) is dev and [i2,n) is test
func (p Proportions) Cut(n int) (i1, i2 int) {
	i1 = int(math.Floor(p.Train * float64(n)))
	i2 = int(math.Floor((p.Train + p.Dev) * float64(n)))
	if i2 > n {
		i2 = n
	}
	if i1 > i2 {
		i1 = i2
	}
	return
}

// A Split is the result of partitioning a language's data
type Split struct {
	Train, Dev, Test []nlp.Record
}

// Datasets returns the partitions in train, dev, test order
func (s Split) Datasets() [3][]nlp.Record {
	return [3][]nlp.Record{s.Train, s.Dev, s.Test}
}

func (s Split) Len() int {
	return len(s.Train) + len(s.Dev) + len(s.Test)
}

// Shuffle returns a permutation of 0..n-1 determined only by n and seed
func Shuffle(n int, seed int64) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Partition shuffles the lemmas of m with seed and cuts them by p into three
// lemma-disjoint groups, each expanded back into records. m is not modified.
func Partition(m *LemmaMap, p Proportions, seed int64) (Split, error) {
	if err := p.Validate(); err != nil {
		return Split{}, err
	}
	entries := m.Entries()
	shuffled := make([]*nlp.LemmaEntry, len(entries))
	for i, j := range Shuffle(len(entries), seed) {
		shuffled[i] = entries[j]
	}
	i1, i2 := p.Cut(len(shuffled))
	return Split{
		Train: nlp.Expand(shuffled[:i1]),
		Dev:   nlp.Expand(shuffled[i1:i2]),
		Test:  nlp.Expand(shuffled[i2:]),
	}, nil
}

// PartitionForms shuffles and cuts individual records rather than lemmas, so
// a lemma may end up in more than one partition
func PartitionForms(records []nlp.Record, p Proportions, seed int64) (Split, error) {
	if err := p.Validate(); err != nil {
		return Split{}, err
	}
	shuffled := make([]nlp.Record, len(records))
	for i, j := range Shuffle(len(records), seed) {
		shuffled[i] = records[j]
	}
	i1, i2 := p.Cut(len(shuffled))
	return Split{
		Train: shuffled[:i1:i1],
		Dev:   shuffled[i1:i2:i2],
		Test:  shuffled[i2:],
	}, nil
}
