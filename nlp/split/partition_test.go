package split

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	nlp "morphsplit/nlp/types"
)

// buildLemmaMap makes n lemmas, each with a train paradigm of two forms and
// every third lemma with a dev paradigm as well
func buildLemmaMap(n int) *LemmaMap {
	var partitions [3][]nlp.Record
	for i := 0; i < n; i++ {
		lemma := fmt.Sprintf("lemma%03d", i)
		partitions[0] = append(partitions[0],
			nlp.Record{Lemma: lemma, Form: lemma + "s", Tag: "N;PL"},
			nlp.Record{Lemma: lemma, Form: lemma, Tag: "N;SG"})
		if i%3 == 0 {
			partitions[1] = append(partitions[1], nlp.Record{Lemma: lemma, Form: lemma + "'s", Tag: "N;GEN;SG"})
		}
	}
	return AggregateRecords(partitions, Options{})
}

func checkDisjointCover(t *testing.T, m *LemmaMap, s Split) {
	t.Helper()
	sets := [3]map[string]bool{nlp.Lemmas(s.Train), nlp.Lemmas(s.Dev), nlp.Lemmas(s.Test)}
	if overlap := AuditLemmas(sets[0], sets[1], sets[2]); overlap.Leaks() {
		t.Errorf("Partitions share lemmas: %v", overlap)
	}
	var total int
	for _, set := range sets {
		total += len(set)
		for lemma := range set {
			if _, exists := m.Get(lemma); !exists {
				t.Errorf("Unknown lemma %s in output", lemma)
			}
		}
	}
	if total != m.Len() {
		t.Errorf("Expected %d lemmas in total, got %d", m.Len(), total)
	}
	if s.Len() != m.NumRecords() {
		t.Errorf("Expected %d records in total, got %d", m.NumRecords(), s.Len())
	}
}

func TestPartitionDisjointAndCovering(t *testing.T) {
	proportions := []Proportions{
		DEFAULT_PROPORTIONS,
		{0.8, 0.1, 0.1},
		{1, 0, 0},
		{0, 0, 1},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
	}
	for _, n := range []int{0, 1, 2, 3, 10, 57} {
		m := buildLemmaMap(n)
		for _, p := range proportions {
			for _, seed := range []int64{0, 1, 42} {
				s, err := Partition(m, p, seed)
				if err != nil {
					t.Fatalf("n=%d %v seed=%d: %v", n, p, seed, err)
				}
				checkDisjointCover(t, m, s)
			}
		}
	}
}

func TestPartitionSizes(t *testing.T) {
	m := buildLemmaMap(8)
	s, err := Partition(m, Proportions{0.5, 0.25, 0.25}, 1)
	if err != nil {
		t.Fatal(err)
	}
	trainLemmas, devLemmas, testLemmas := len(nlp.Lemmas(s.Train)), len(nlp.Lemmas(s.Dev)), len(nlp.Lemmas(s.Test))
	if trainLemmas != 4 || devLemmas != 2 || testLemmas != 2 {
		t.Errorf("Expected 4/2/2 lemmas, got %d/%d/%d", trainLemmas, devLemmas, testLemmas)
	}
}

func TestPartitionDeterministic(t *testing.T) {
	m := buildLemmaMap(40)
	first, err := Partition(m, DEFAULT_PROPORTIONS, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := Partition(m, DEFAULT_PROPORTIONS, 1)
	if !reflect.DeepEqual(first, second) {
		t.Error("Same seed and input order must give identical splits")
	}
	other, _ := Partition(m, DEFAULT_PROPORTIONS, 2)
	if reflect.DeepEqual(first, other) {
		t.Error("Different seeds should give different splits")
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	m := buildLemmaMap(20)
	before := m.Lemmas()
	if _, err := Partition(m, DEFAULT_PROPORTIONS, 7); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, m.Lemmas()) {
		t.Error("Partition reordered the lemma map")
	}
	entries := m.Entries()
	for i, lemma := range before {
		if entries[i].Lemma != lemma {
			t.Errorf("Entry %d: expected %s, got %s", i, lemma, entries[i].Lemma)
		}
	}
}

func TestPartitionProportionError(t *testing.T) {
	m := buildLemmaMap(5)
	_, err := Partition(m, Proportions{0.7, 0.2, 0.05}, 1)
	var configErr *ProportionConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("Expected ProportionConfigError, got %v", err)
	}
	if configErr.Proportions.Test != 0.05 {
		t.Errorf("Error should carry the offending proportions, got %v", configErr.Proportions)
	}
	for _, p := range []Proportions{
		{0.5, 0.5, 0.5},
		{1.2, -0.1, -0.1},
		{0, 0, 0},
		{math.NaN(), 0, 0},
		{1, math.NaN(), 0},
		{math.Inf(1), 0, 0},
		{1, math.Inf(-1), math.Inf(1)},
	} {
		if err := p.Validate(); err == nil {
			t.Errorf("Expected %v to be rejected", p)
		}
	}
	for _, p := range []Proportions{{math.NaN(), 0, 0}, {math.Inf(1), 0, 0}} {
		if _, err := Partition(m, p, 1); !errors.As(err, &configErr) {
			t.Errorf("Expected ProportionConfigError for %v, got %v", p, err)
		}
	}
	if err := (Proportions{0.7, 0.2, 0.1}).Validate(); err != nil {
		t.Errorf("Expected default proportions to be valid: %v", err)
	}
}

func TestPartitionExpansion(t *testing.T) {
	trn := []nlp.Record{{Lemma: "run", Form: "ran", Tag: "V;PST"}}
	dev := []nlp.Record{{Lemma: "run", Form: "run", Tag: "V;PRS"}}
	m := AggregateRecords([3][]nlp.Record{trn, dev, nil}, Options{})
	s, err := Partition(m, Proportions{1, 0, 0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	expected := []nlp.Record{{Lemma: "run", Form: "ran", Tag: "V;PST"}, {Lemma: "run", Form: "run", Tag: "V;PRS"}}
	if !reflect.DeepEqual(s.Train, expected) {
		t.Errorf("Expected %v, got %v", expected, s.Train)
	}
	if len(s.Dev) != 0 || len(s.Test) != 0 {
		t.Errorf("Expected empty dev and test, got %v %v", s.Dev, s.Test)
	}
}

func TestPartitionSmall(t *testing.T) {
	m := buildLemmaMap(2)
	s, err := Partition(m, Proportions{0.7, 0.2, 0.1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	checkDisjointCover(t, m, s)
}

func TestCut(t *testing.T) {
	for _, test := range []struct {
		p      Proportions
		n      int
		i1, i2 int
	}{
		{Proportions{0.5, 0.25, 0.25}, 8, 4, 6},
		{Proportions{0.5, 0.25, 0.25}, 0, 0, 0},
		{Proportions{1, 0, 0}, 3, 3, 3},
		{Proportions{0, 0, 1}, 3, 0, 0},
		{Proportions{0.7, 0.2, 0.1}, 2, 1, 1},
	} {
		i1, i2 := test.p.Cut(test.n)
		if i1 != test.i1 || i2 != test.i2 {
			t.Errorf("%v of %d: expected (%d, %d), got (%d, %d)", test.p, test.n, test.i1, test.i2, i1, i2)
		}
	}
}

func TestShufflePermutation(t *testing.T) {
	perm := Shuffle(100, 3)
	seen := make(map[int]bool, len(perm))
	for _, i := range perm {
		if i < 0 || i >= 100 || seen[i] {
			t.Fatalf("Not a permutation: %v", perm)
		}
		seen[i] = true
	}
	if !reflect.DeepEqual(perm, Shuffle(100, 3)) {
		t.Error("Shuffle is not reproducible")
	}
}

func TestPartitionForms(t *testing.T) {
	m := buildLemmaMap(30)
	records := nlp.Expand(m.Entries())
	s, err := PartitionForms(records, DEFAULT_PROPORTIONS, 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), s.Len())
	}
	i1, i2 := DEFAULT_PROPORTIONS.Cut(len(records))
	if len(s.Train) != i1 || len(s.Dev) != i2-i1 {
		t.Errorf("Unexpected partition sizes %d/%d/%d", len(s.Train), len(s.Dev), len(s.Test))
	}
	counts := make(map[nlp.Record]int)
	for _, r := range records {
		counts[r]++
	}
	for _, dataset := range s.Datasets() {
		for _, r := range dataset {
			counts[r]--
		}
	}
	for r, c := range counts {
		if c != 0 {
			t.Errorf("Record %v count off by %d", r, c)
		}
	}
	again, _ := PartitionForms(records, DEFAULT_PROPORTIONS, 1)
	if !reflect.DeepEqual(s, again) {
		t.Error("Form split is not reproducible")
	}
	if _, err := PartitionForms(records, Proportions{0.7, 0.2, 0.05}, 1); err == nil {
		t.Error("Expected proportion error")
	}
}

func TestLanguageSeed(t *testing.T) {
	if LanguageSeed(1, "fin", SEED_FIXED) != 1 || LanguageSeed(1, "zul", SEED_FIXED) != 1 {
		t.Error("Fixed mode must return the base seed")
	}
	fin := LanguageSeed(1, "fin", SEED_LANG)
	if fin != LanguageSeed(1, "fin", SEED_LANG) {
		t.Error("Language seed is not stable")
	}
	if fin == LanguageSeed(1, "zul", SEED_LANG) {
		t.Error("Expected different seeds for different languages")
	}
	if fin == LanguageSeed(2, "fin", SEED_LANG) {
		t.Error("Expected base seed to affect language seed")
	}
}

func TestParseModes(t *testing.T) {
	if mode, err := ParseMode(""); err != nil || mode != LEMMA_SPLIT {
		t.Errorf("Expected default lemma mode, got %v %v", mode, err)
	}
	if mode, err := ParseMode("form"); err != nil || mode != FORM_SPLIT {
		t.Errorf("Expected form mode, got %v %v", mode, err)
	}
	if _, err := ParseMode("sentence"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if mode, err := ParseSeedMode("lang"); err != nil || mode != SEED_LANG {
		t.Errorf("Expected lang seed mode, got %v %v", mode, err)
	}
	if _, err := ParseSeedMode("global"); err == nil {
		t.Error("Expected error for unknown seed mode")
	}
}
