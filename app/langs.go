package app

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"morphsplit/nlp/format/sigmorphon"
	"morphsplit/nlp/split"
	"morphsplit/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	showPaths bool
	topTags   int
)

// LangStats summarizes the input data of a language
type LangStats struct {
	Lemmas, Records int
	Tags            []util.TopNStrIntDatum
}

func Stats(lang sigmorphon.Language, top int) (*LangStats, error) {
	records, err := split.ReadRecords([3]string{lang.Train, lang.Dev, lang.Test}, split.Options{})
	if err != nil {
		return nil, err
	}
	lemmas := make(map[string]bool)
	tags := make(map[string]int)
	for _, r := range records {
		lemmas[r.Lemma] = true
		tags[r.Tag]++
	}
	return &LangStats{
		Lemmas:  len(lemmas),
		Records: len(records),
		Tags:    util.GetTopNStrInt(tags, top),
	}, nil
}

func (s *LangStats) TagString() string {
	parts := make([]string, len(s.Tags))
	for i, tag := range s.Tags {
		parts[i] = fmt.Sprintf("%s:%d", tag.S, tag.N)
	}
	return strings.Join(parts, " ")
}

func Langs(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"in"}); err != nil {
		return err
	}
	codes, err := SelectedLanguages(nil)
	if err != nil {
		return err
	}
	langs, failures := DiscoverLanguages(codes)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	header := "#\tlang\tfamily"
	if topTags > 0 {
		header += "\tlemmas\trecords\ttop tags"
	}
	if showPaths {
		header += "\ttrain\tdev\ttest"
	}
	fmt.Fprintln(w, header)
	for i, lang := range langs {
		row := fmt.Sprintf("%d\t%s\t%s", i+1, lang.Code, lang.Family)
		if topTags > 0 {
			stats, err := Stats(lang, topTags)
			if err != nil {
				log.Println("Failed reading", lang.Code, err)
				failures = append(failures, &split.LanguageError{Lang: lang.Code, Err: err})
				continue
			}
			row += fmt.Sprintf("\t%d\t%d\t%s", stats.Lemmas, stats.Records, stats.TagString())
		}
		if showPaths {
			row += fmt.Sprintf("\t%s\t%s\t%s", lang.Train, lang.Dev, lang.Test)
		}
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if allOut {
		log.Println("Found", len(langs), "languages")
	}
	return ReportFailures(failures)
}

func LangsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Langs,
		UsageLine: "langs <file options> [arguments]",
		Short:     "list the languages of a SIGMORPHON release",
		Long: `
list the languages of a SIGMORPHON release

	$ ./morphsplit langs -in <release dir> [-paths] [-stats <n>]

With -stats each language's input files are read and counted, listing the n
most frequent tags.

`,
		Flag: *flag.NewFlagSet("langs", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inDir, "in", "", "SIGMORPHON release directory")
	cmd.Flag.StringVar(&langList, "langs", "", "Comma separated language codes (default: all)")
	cmd.Flag.BoolVar(&showPaths, "paths", false, "Print input file paths")
	cmd.Flag.IntVar(&topTags, "stats", 0, "Print lemma and record counts and this many top tags")
	return cmd
}
