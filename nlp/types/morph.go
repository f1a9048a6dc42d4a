package types

import (
	"fmt"
	"strings"
)

const (
	FIELD_SEPARATOR   = "\t"
	FEATURE_SEPARATOR = ";"
)

// A Record is a single inflection: a lemma, one of its surface forms and the
// feature bundle identifying that form (e.g. V;PST;1;SG)
type Record struct {
	Lemma, Form, Tag string
}

func (r Record) String() string {
	return strings.Join([]string{r.Lemma, r.Form, r.Tag}, FIELD_SEPARATOR)
}

// Masked returns the record with its form blanked, as found in blind test sets
func (r Record) Masked() Record {
	return Record{r.Lemma, "", r.Tag}
}

func (r Record) Features() []string {
	return strings.Split(r.Tag, FEATURE_SEPARATOR)
}

// Partition identifies one of the three data partitions
type Partition int

const (
	TRAIN Partition = iota
	DEV
	TEST
)

var PARTITIONS = [3]Partition{TRAIN, DEV, TEST}

func (p Partition) String() string {
	switch p {
	case TRAIN:
		return "train"
	case DEV:
		return "dev"
	case TEST:
		return "test"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// A Paradigm holds the tag -> form mapping of a lemma as it appeared in a
// single partition file. Tags keep the order of their first occurrence; a
// repeated tag replaces the form in place (last wins).
type Paradigm struct {
	Source Partition
	tags   []string
	forms  map[string]string
}

func NewParadigm(source Partition) *Paradigm {
	return &Paradigm{
		Source: source,
		tags:   make([]string, 0, 4),
		forms:  make(map[string]string, 4),
	}
}

// Set maps tag to form and reports whether an existing form was replaced
func (p *Paradigm) Set(tag, form string) bool {
	if _, exists := p.forms[tag]; exists {
		p.forms[tag] = form
		return true
	}
	p.tags = append(p.tags, tag)
	p.forms[tag] = form
	return false
}

func (p *Paradigm) Get(tag string) (string, bool) {
	form, exists := p.forms[tag]
	return form, exists
}

func (p *Paradigm) Len() int {
	return len(p.tags)
}

func (p *Paradigm) Tags() []string {
	retval := make([]string, len(p.tags))
	copy(retval, p.tags)
	return retval
}

// Records expands the paradigm of lemma into records, in tag order
func (p *Paradigm) Records(lemma string) []Record {
	retval := make([]Record, len(p.tags))
	for i, tag := range p.tags {
		retval[i] = Record{lemma, p.forms[tag], tag}
	}
	return retval
}

// A LemmaEntry groups every paradigm of a lemma, at most one per partition,
// in partition order
type LemmaEntry struct {
	Lemma     string
	Paradigms []*Paradigm
}

func (e *LemmaEntry) NumRecords() (num int) {
	for _, p := range e.Paradigms {
		num += p.Len()
	}
	return
}

func (e *LemmaEntry) Records() []Record {
	retval := make([]Record, 0, e.NumRecords())
	for _, p := range e.Paradigms {
		retval = append(retval, p.Records(e.Lemma)...)
	}
	return retval
}

// Expand flattens lemma entries into records: entry order, then paradigm
// order, then tag order
func Expand(entries []*LemmaEntry) []Record {
	var num int
	for _, e := range entries {
		num += e.NumRecords()
	}
	retval := make([]Record, 0, num)
	for _, e := range entries {
		retval = append(retval, e.Records()...)
	}
	return retval
}

// Lemmas returns the set of lemmas found in records
func Lemmas(records []Record) map[string]bool {
	retval := make(map[string]bool)
	for _, r := range records {
		retval[r.Lemma] = true
	}
	return retval
}
