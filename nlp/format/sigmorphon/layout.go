package sigmorphon

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Directory names of a SIGMORPHON shared task release
const (
	DEVELOPMENT_DIR = "DEVELOPMENT-LANGUAGES"
	SURPRISE_DIR    = "SURPRISE-LANGUAGES"
	GOLD_TEST_DIR   = "GOLD-TEST"
)

// File extensions; NOGOLD_EXT is appended to the test file name of a blind
// test set
const (
	TRAIN_EXT  = ".trn"
	DEV_EXT    = ".dev"
	TEST_EXT   = ".tst"
	NOGOLD_EXT = ".nogold"
)

// FAMILY_DIRS are scanned in order; a language first seen in an earlier
// directory keeps that family
var FAMILY_DIRS = []string{DEVELOPMENT_DIR, SURPRISE_DIR}

// Paths of the files making up one language's split
type Paths struct {
	Train, Dev, Test, NoGold string
}

// Layout is the output path template {root}/{family}/{lang}.{ext}
func Layout(root, family, lang string) Paths {
	base := filepath.Join(root, family, lang)
	return Paths{
		Train:  base + TRAIN_EXT,
		Dev:    base + DEV_EXT,
		Test:   base + TEST_EXT,
		NoGold: base + TEST_EXT + NOGOLD_EXT,
	}
}

// A Language is one language of a SIGMORPHON release with its input files
type Language struct {
	Code   string
	Family string
	Paths
}

// Output returns the paths of the regenerated split of l under root
func (l Language) Output(root string) Paths {
	return Layout(root, l.Family, l.Code)
}

func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// Discover finds the languages of the SIGMORPHON release at root. The gold
// test directory defines the language list; train (.trn), dev (.dev) and
// blind test (.tst) files are looked up in the family directories. Languages
// missing a train, dev or gold test file are left out and reported with a
// MissingPathError each.
func Discover(root string) ([]Language, []error) {
	goldDir := filepath.Join(root, GOLD_TEST_DIR)
	entries, err := os.ReadDir(goldDir)
	if err != nil {
		return nil, []error{&MissingPathError{Lang: "*", Kind: "gold test directory", Path: goldDir}}
	}
	gold := make(map[string]string, len(entries))
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		code, _ := splitExt(entry.Name())
		if _, exists := gold[code]; !exists {
			codes = append(codes, code)
		}
		gold[code] = filepath.Join(goldDir, entry.Name())
	}
	sort.Strings(codes)

	found := make(map[string]*Language, len(codes))
	for _, familyDir := range FAMILY_DIRS {
		dir := filepath.Join(root, familyDir)
		families, err := listDirs(dir)
		if err != nil {
			continue
		}
		for _, family := range families {
			files, err := os.ReadDir(filepath.Join(dir, family))
			if err != nil {
				continue
			}
			for _, file := range files {
				if file.IsDir() {
					continue
				}
				code, ext := splitExt(file.Name())
				lang, exists := found[code]
				if !exists {
					lang = &Language{Code: code, Family: family}
					found[code] = lang
				}
				path := filepath.Join(dir, family, file.Name())
				switch ext {
				case TRAIN_EXT:
					lang.Train = path
				case DEV_EXT:
					lang.Dev = path
				case TEST_EXT:
					lang.NoGold = path
				}
			}
		}
	}

	var (
		langs = make([]Language, 0, len(codes))
		errs  []error
	)
	for _, code := range codes {
		lang, exists := found[code]
		if !exists {
			errs = append(errs, &MissingPathError{Lang: code, Kind: "train"})
			continue
		}
		lang.Test = gold[code]
		if err := lang.Verify(); err != nil {
			errs = append(errs, err)
			continue
		}
		langs = append(langs, *lang)
	}
	return langs, errs
}

// Verify checks that the train, dev and test files of l exist
func (l Language) Verify() error {
	for _, required := range []struct{ kind, path string }{
		{"train", l.Train},
		{"dev", l.Dev},
		{"test", l.Test},
	} {
		if len(required.path) == 0 {
			return &MissingPathError{Lang: l.Code, Kind: required.kind}
		}
		if _, err := os.Stat(required.path); err != nil {
			return &MissingPathError{Lang: l.Code, Kind: required.kind, Path: required.path}
		}
	}
	return nil
}

// DiscoverSplit finds the languages of a split written with Layout under root
func DiscoverSplit(root string) ([]Language, []error) {
	families, err := listDirs(root)
	if err != nil {
		return nil, []error{&MissingPathError{Lang: "*", Kind: "split directory", Path: root}}
	}
	var (
		langs []Language
		errs  []error
	)
	for _, family := range families {
		files, err := os.ReadDir(filepath.Join(root, family))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, file := range files {
			code, ext := splitExt(file.Name())
			if file.IsDir() || ext != TRAIN_EXT {
				continue
			}
			lang := Language{code, family, Layout(root, family, code)}
			if err := lang.Verify(); err != nil {
				errs = append(errs, err)
				continue
			}
			langs = append(langs, lang)
		}
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Code < langs[j].Code })
	return langs, errs
}

// Select keeps the languages whose code is in codes, in their original
// order; an empty codes keeps all
func Select(langs []Language, codes []string) []Language {
	if len(codes) == 0 {
		return langs
	}
	keep := make(map[string]bool, len(codes))
	for _, code := range codes {
		keep[code] = true
	}
	retval := make([]Language, 0, len(codes))
	for _, lang := range langs {
		if keep[lang.Code] {
			retval = append(retval, lang)
		}
	}
	return retval
}
