package split

import (
	"errors"
	"io"
	"os"

	"morphsplit/nlp/format/sigmorphon"
	nlp "morphsplit/nlp/types"
	"morphsplit/util"
)

const APPROX_LEMMAS = 1000

// A LemmaMap holds every lemma of a language with its paradigms, in order of
// first appearance (train file first, then dev, then test)
type LemmaMap struct {
	lemmas  *util.EnumSet
	entries []*nlp.LemmaEntry
}

func NewLemmaMap(capacity int) *LemmaMap {
	return &LemmaMap{
		lemmas:  util.NewEnumSet(capacity),
		entries: make([]*nlp.LemmaEntry, 0, capacity),
	}
}

// Add adds one record read from the partition source. Records of a partition
// must be added before those of any later partition.
func (m *LemmaMap) Add(source nlp.Partition, record nlp.Record) {
	index, added := m.lemmas.Add(record.Lemma)
	if added {
		m.entries = append(m.entries, &nlp.LemmaEntry{Lemma: record.Lemma})
	}
	entry := m.entries[index]
	last := len(entry.Paradigms) - 1
	if last < 0 || entry.Paradigms[last].Source != source {
		entry.Paradigms = append(entry.Paradigms, nlp.NewParadigm(source))
		last++
	}
	entry.Paradigms[last].Set(record.Tag, record.Form)
}

func (m *LemmaMap) Len() int {
	return len(m.entries)
}

func (m *LemmaMap) Get(lemma string) (*nlp.LemmaEntry, bool) {
	index, exists := m.lemmas.IndexOf(lemma)
	if !exists {
		return nil, false
	}
	return m.entries[index], true
}

func (m *LemmaMap) Lemmas() []string {
	return m.lemmas.Values()
}

// Entries returns a fresh slice of the entries in insertion order
func (m *LemmaMap) Entries() []*nlp.LemmaEntry {
	retval := make([]*nlp.LemmaEntry, len(m.entries))
	copy(retval, m.entries)
	return retval
}

func (m *LemmaMap) NumRecords() (num int) {
	for _, e := range m.entries {
		num += e.NumRecords()
	}
	return
}

// Options control how records are read before aggregation
type Options struct {
	// Normalize puts lemma, form and tag in Unicode NFC
	Normalize bool
}

// AggregateRecords merges the records of the three partitions, given in
// train, dev, test order
func AggregateRecords(partitions [3][]nlp.Record, opts Options) *LemmaMap {
	m := NewLemmaMap(APPROX_LEMMAS)
	for i, records := range partitions {
		for _, record := range records {
			if opts.Normalize {
				record = sigmorphon.NFC(record)
			}
			m.Add(nlp.PARTITIONS[i], record)
		}
	}
	return m
}

// AggregateReaders reads and merges three partitions; names are used in
// error messages
func AggregateReaders(readers [3]io.Reader, names [3]string, opts Options) (*LemmaMap, error) {
	var partitions [3][]nlp.Record
	for i, reader := range readers {
		records, err := sigmorphon.Read(reader)
		if err != nil {
			return nil, sigmorphon.WithFile(err, names[i])
		}
		partitions[i] = records
	}
	return AggregateRecords(partitions, opts), nil
}

func readPartitions(paths [3]string) ([3][]nlp.Record, error) {
	var partitions [3][]nlp.Record
	for i, path := range paths {
		records, err := sigmorphon.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return partitions, &sigmorphon.MissingPathError{Kind: nlp.PARTITIONS[i].String(), Path: path}
			}
			return partitions, err
		}
		partitions[i] = records
	}
	return partitions, nil
}

// Aggregate reads the train, dev and test files of a language and merges them
// by lemma
func Aggregate(paths [3]string, opts Options) (*LemmaMap, error) {
	partitions, err := readPartitions(paths)
	if err != nil {
		return nil, err
	}
	return AggregateRecords(partitions, opts), nil
}

// ReadRecords reads the records of the three files, concatenated in order
func ReadRecords(paths [3]string, opts Options) ([]nlp.Record, error) {
	partitions, err := readPartitions(paths)
	if err != nil {
		return nil, err
	}
	retval := make([]nlp.Record, 0, len(partitions[0])+len(partitions[1])+len(partitions[2]))
	for _, records := range partitions {
		for _, record := range records {
			if opts.Normalize {
				record = sigmorphon.NFC(record)
			}
			retval = append(retval, record)
		}
	}
	return retval, nil
}
