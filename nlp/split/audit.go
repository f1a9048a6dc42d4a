package split

import (
	"fmt"
	"sort"

	"morphsplit/nlp/format/sigmorphon"
	nlp "morphsplit/nlp/types"
)

// Overlap holds the lemmas shared by each pair of partitions. A non-empty
// intersection is leakage: a diagnostic, never a reason to stop.
type Overlap struct {
	TrainDev  []string `yaml:"train-dev,omitempty"`
	TrainTest []string `yaml:"train-test,omitempty"`
	DevTest   []string `yaml:"dev-test,omitempty"`
}

// Flags reports which of the train/dev, train/test and dev/test
// intersections are non-empty
func (o Overlap) Flags() (bool, bool, bool) {
	return len(o.TrainDev) > 0, len(o.TrainTest) > 0, len(o.DevTest) > 0
}

func (o Overlap) Leaks() bool {
	trainDev, trainTest, devTest := o.Flags()
	return trainDev || trainTest || devTest
}

func emptyOrNot(nonEmpty bool) string {
	if nonEmpty {
		return "Non-Empty"
	}
	return "Empty"
}

func (o Overlap) String() string {
	trainDev, trainTest, devTest := o.Flags()
	return fmt.Sprintf("(%s, %s, %s)", emptyOrNot(trainDev), emptyOrNot(trainTest), emptyOrNot(devTest))
}

func intersect(a, b map[string]bool) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	var retval []string
	for lemma := range a {
		if b[lemma] {
			retval = append(retval, lemma)
		}
	}
	sort.Strings(retval)
	return retval
}

// AuditLemmas computes the pairwise intersections of three lemma sets
func AuditLemmas(train, dev, test map[string]bool) Overlap {
	return Overlap{
		TrainDev:  intersect(train, dev),
		TrainTest: intersect(train, test),
		DevTest:   intersect(dev, test),
	}
}

// AuditSplit audits an in-memory split
func AuditSplit(s Split) Overlap {
	return AuditLemmas(nlp.Lemmas(s.Train), nlp.Lemmas(s.Dev), nlp.Lemmas(s.Test))
}

// Audit reads the lemmas of three files and reports their pairwise overlap
func Audit(trainPath, devPath, testPath string) (Overlap, error) {
	var sets [3]map[string]bool
	for i, path := range []string{trainPath, devPath, testPath} {
		lemmas, err := sigmorphon.ReadLemmasFile(path)
		if err != nil {
			return Overlap{}, fmt.Errorf("auditing %s: %w", path, err)
		}
		sets[i] = lemmas
	}
	return AuditLemmas(sets[0], sets[1], sets[2]), nil
}
