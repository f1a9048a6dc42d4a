package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"morphsplit/nlp/format/sigmorphon"
	"morphsplit/nlp/split"
	"morphsplit/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	allOut bool = true
	quiet  bool

	// directories and file names
	inDir, outDir string
	confFile      string
	langFile      string
	inFile        string

	// selection
	langList string
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("required flag -%s not set", name)
		}
	}
	return nil
}

// SetFlags returns the names of the flags given on the command line
func SetFlags(cmd *commander.Command) map[string]bool {
	set := make(map[string]bool)
	cmd.Flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// SelectedLanguages merges the -langs list and the -langfile list; an empty
// result selects every language
func SelectedLanguages(fromConf []string) ([]string, error) {
	codes := append([]string{}, fromConf...)
	if len(langList) > 0 {
		codes = conf.SplitList(langList)
	}
	if len(langFile) > 0 {
		c, err := conf.ReadFile(langFile)
		if err != nil {
			return nil, fmt.Errorf("reading language list: %w", err)
		}
		codes = append(codes, c.Values...)
	}
	return codes, nil
}

// DiscoverLanguages finds the selected languages under inDir. Selected
// languages that could not be found are returned as failures, including
// codes without a gold test file.
func DiscoverLanguages(codes []string) ([]sigmorphon.Language, split.BatchErrors) {
	langs, errs := sigmorphon.Discover(inDir)
	selected := make(map[string]bool, len(codes))
	for _, code := range codes {
		selected[code] = true
	}
	var failures split.BatchErrors
	reported := make(map[string]bool)
	for _, err := range errs {
		lang := "*"
		var missing *sigmorphon.MissingPathError
		if errors.As(err, &missing) {
			lang = missing.Lang
		}
		if len(codes) > 0 && !selected[lang] && lang != "*" {
			continue
		}
		reported[lang] = true
		failures = append(failures, &split.LanguageError{Lang: lang, Err: err})
	}
	// an unreadable root already failed every language
	if reported["*"] {
		return nil, failures
	}
	for _, lang := range langs {
		reported[lang.Code] = true
	}
	for _, code := range codes {
		if reported[code] {
			continue
		}
		reported[code] = true
		err := &sigmorphon.MissingPathError{Lang: code, Kind: "test"}
		failures = append(failures, &split.LanguageError{Lang: code, Err: err})
	}
	return sigmorphon.Select(langs, codes), failures
}

// ReportFailures logs per-language failures at the end of a batch run
func ReportFailures(failures split.BatchErrors) error {
	if len(failures) == 0 {
		return nil
	}
	log.Println()
	log.Printf("%d language(s) failed:", len(failures))
	for _, failure := range failures {
		log.Printf("\t%v", failure)
	}
	return failures
}
