package split

import (
	"errors"
	"fmt"

	"morphsplit/nlp/format/sigmorphon"
	nlp "morphsplit/nlp/types"
	"morphsplit/util"
)

// Config of a split run
type Config struct {
	Proportions Proportions `yaml:"proportions"`
	Seed        int64       `yaml:"seed"`
	SeedMode    SeedMode    `yaml:"seed mode"`
	Mode        Mode        `yaml:"mode"`
	Normalize   bool        `yaml:"normalize"`
}

var DEFAULT_CONFIG = Config{
	Proportions: DEFAULT_PROPORTIONS,
	Seed:        1,
	SeedMode:    SEED_FIXED,
	Mode:        LEMMA_SPLIT,
}

func (c Config) Validate() error {
	if err := c.Proportions.Validate(); err != nil {
		return err
	}
	if _, err := ParseSeedMode(string(c.SeedMode)); err != nil {
		return err
	}
	_, err := ParseMode(string(c.Mode))
	return err
}

// Counts of one output partition
type Counts struct {
	Lemmas  int `yaml:"lemmas"`
	Records int `yaml:"records"`
}

func count(records []nlp.Record) Counts {
	return Counts{len(nlp.Lemmas(records)), len(records)}
}

func countLemmas(datasets [3][]nlp.Record) int {
	seen := make(map[string]bool)
	for _, records := range datasets {
		for _, r := range records {
			seen[r.Lemma] = true
		}
	}
	return len(seen)
}

type FileSum struct {
	Path string `yaml:"path"`
	MD5  string `yaml:"md5"`
}

// A Report describes the split generated for one language
type Report struct {
	Lang    string    `yaml:"lang"`
	Family  string    `yaml:"family"`
	Seed    int64     `yaml:"seed"`
	Lemmas  int       `yaml:"lemmas"`
	Records int       `yaml:"records"`
	Train   Counts    `yaml:"train"`
	Dev     Counts    `yaml:"dev"`
	Test    Counts    `yaml:"test"`
	Leakage string    `yaml:"leakage"`
	Files   []FileSum `yaml:"files"`

	Overlap Overlap `yaml:"-"`
}

// Run splits the data of lang according to c, in memory
func Run(lang sigmorphon.Language, c Config) (Split, error) {
	var (
		paths = [3]string{lang.Train, lang.Dev, lang.Test}
		opts  = Options{Normalize: c.Normalize}
		seed  = LanguageSeed(c.Seed, lang.Code, c.SeedMode)
	)
	if c.Mode == FORM_SPLIT {
		records, err := ReadRecords(paths, opts)
		if err != nil {
			return Split{}, err
		}
		return PartitionForms(records, c.Proportions, seed)
	}
	m, err := Aggregate(paths, opts)
	if err != nil {
		return Split{}, err
	}
	return Partition(m, c.Proportions, seed)
}

// Generate splits lang and writes the train, dev, gold test and blind test
// files under outRoot. The written files are audited for lemma overlap and
// checksummed into the returned report.
func Generate(lang sigmorphon.Language, outRoot string, c Config) (*Report, error) {
	s, err := Run(lang, c)
	if err != nil {
		var missing *sigmorphon.MissingPathError
		if errors.As(err, &missing) {
			missing.Lang = lang.Code
		}
		return nil, err
	}

	out := lang.Output(outRoot)
	for _, file := range []struct {
		path    string
		records []nlp.Record
		write   func(string, []nlp.Record) error
	}{
		{out.Train, s.Train, sigmorphon.WriteFile},
		{out.Dev, s.Dev, sigmorphon.WriteFile},
		{out.Test, s.Test, sigmorphon.WriteFile},
		{out.NoGold, s.Test, sigmorphon.WriteMaskedFile},
	} {
		if err := file.write(file.path, file.records); err != nil {
			return nil, fmt.Errorf("writing %s: %w", file.path, err)
		}
	}

	overlap, err := Audit(out.Train, out.Dev, out.Test)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Lang:    lang.Code,
		Family:  lang.Family,
		Seed:    LanguageSeed(c.Seed, lang.Code, c.SeedMode),
		Lemmas:  countLemmas(s.Datasets()),
		Records: s.Len(),
		Train:   count(s.Train),
		Dev:     count(s.Dev),
		Test:    count(s.Test),
		Leakage: overlap.String(),
		Overlap: overlap,
	}
	for _, path := range []string{out.Train, out.Dev, out.Test, out.NoGold} {
		sum, err := util.MD5File(path)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, FileSum{path, sum})
	}
	return report, nil
}
