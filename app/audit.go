package app

import (
	"fmt"
	"log"

	"morphsplit/nlp/format/sigmorphon"
	"morphsplit/nlp/split"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	auditTrain, auditDev, auditTest string
	showLemmas                      int
)

func AuditConfigOut() {
	log.Println("Configuration")
	if len(auditTrain) > 0 {
		log.Printf("Train:\t\t%s", auditTrain)
		log.Printf("Dev:\t\t%s", auditDev)
		log.Printf("Test:\t\t%s", auditTest)
	} else {
		log.Printf("Input:\t\t%s", inDir)
	}
	log.Println()
}

func printOverlap(label string, overlap split.Overlap) {
	fmt.Printf("%s => %v\n", label, overlap)
	if showLemmas <= 0 {
		return
	}
	for _, pair := range []struct {
		name   string
		lemmas []string
	}{
		{"train/dev", overlap.TrainDev},
		{"train/test", overlap.TrainTest},
		{"dev/test", overlap.DevTest},
	} {
		if len(pair.lemmas) == 0 {
			continue
		}
		shown := pair.lemmas
		if len(shown) > showLemmas {
			shown = shown[:showLemmas]
		}
		fmt.Printf("\t%s: %d shared lemmas %v\n", pair.name, len(pair.lemmas), shown)
	}
}

// AuditLanguages reports the lemma overlap of each language's input files.
// Leakage is only reported, never fatal.
func AuditLanguages(langs []sigmorphon.Language) split.BatchErrors {
	var (
		failures split.BatchErrors
		leaking  int
	)
	fmt.Println("Intersections between train, dev & test sets for each language:")
	for i, lang := range langs {
		overlap, err := split.Audit(lang.Train, lang.Dev, lang.Test)
		if err != nil {
			log.Println("Failed auditing", lang.Code, err)
			failures = append(failures, &split.LanguageError{Lang: lang.Code, Err: err})
			continue
		}
		if overlap.Leaks() {
			leaking++
		}
		printOverlap(fmt.Sprintf("%d. %s", i+1, lang.Code), overlap)
	}
	fmt.Println()
	if leaking > 0 {
		log.Printf("Warning: LeakageDetected in %d of %d languages", leaking, len(langs))
	}
	return failures
}

func Audit(cmd *commander.Command, args []string) error {
	single := len(auditTrain) > 0 || len(auditDev) > 0 || len(auditTest) > 0
	if single {
		if err := VerifyFlags(cmd, []string{"train", "dev", "test"}); err != nil {
			return err
		}
	} else if err := VerifyFlags(cmd, []string{"in"}); err != nil {
		return err
	}
	AuditConfigOut()

	if single {
		overlap, err := split.Audit(auditTrain, auditDev, auditTest)
		if err != nil {
			return err
		}
		printOverlap("split", overlap)
		if overlap.Leaks() {
			log.Println("Warning: LeakageDetected", overlap)
		}
		return nil
	}

	codes, err := SelectedLanguages(nil)
	if err != nil {
		return err
	}
	langs, failures := DiscoverLanguages(codes)
	failures = append(failures, AuditLanguages(langs)...)
	return ReportFailures(failures)
}

func AuditCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Audit,
		UsageLine: "audit <file options> [arguments]",
		Short:     "report lemmas shared between train, dev and test",
		Long: `
report lemmas shared between train, dev and test

Audit every language of a SIGMORPHON release:

	$ ./morphsplit audit -in <release dir> [-langs <codes>]

or a single split:

	$ ./morphsplit audit -train <file> -dev <file> -test <file>

`,
		Flag: *flag.NewFlagSet("audit", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inDir, "in", "", "SIGMORPHON release directory")
	cmd.Flag.StringVar(&auditTrain, "train", "", "Train file")
	cmd.Flag.StringVar(&auditDev, "dev", "", "Dev file")
	cmd.Flag.StringVar(&auditTest, "test", "", "Test file")
	cmd.Flag.StringVar(&langList, "langs", "", "Comma separated language codes (default: all)")
	cmd.Flag.StringVar(&langFile, "langfile", "", "File listing language codes, one per line")
	cmd.Flag.IntVar(&showLemmas, "show", 0, "Print up to this many shared lemmas per pair")
	return cmd
}
