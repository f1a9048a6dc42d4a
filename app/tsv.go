package app

import (
	"fmt"
	"log"

	"morphsplit/nlp/format/sigmorphon"
	"morphsplit/nlp/format/tsv"
	"morphsplit/nlp/split"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var tsvMode string

func TSVConfigOut(mode tsv.Mode) {
	log.Println("Configuration")
	log.Printf("Mode:\t\t%s", mode)
	log.Println()
	log.Println("Data")
	if len(inFile) > 0 {
		log.Printf("Input file:\t%s", inFile)
	} else {
		log.Printf("Split dir:\t%s", inDir)
	}
	log.Printf("Output:\t\t%s", outDir)
	log.Println()
}

func convert(in string, mode tsv.Mode) error {
	out := tsv.OutputName(outDir, in)
	num, err := tsv.ConvertFile(in, out, mode)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Wrote", num, "samples to", out)
	}
	return nil
}

func TSV(cmd *commander.Command, args []string) error {
	required := []string{"out"}
	if len(inFile) == 0 {
		required = append(required, "in")
	}
	if err := VerifyFlags(cmd, required); err != nil {
		return err
	}
	mode, err := tsv.ParseMode(tsvMode)
	if err != nil {
		return err
	}
	TSVConfigOut(mode)

	if len(inFile) > 0 {
		if !VerifyExists(inFile) {
			return fmt.Errorf("input file %s not accessible", inFile)
		}
		return convert(inFile, mode)
	}

	langs, errs := sigmorphon.DiscoverSplit(inDir)
	var failures split.BatchErrors
	for _, err := range errs {
		failures = append(failures, &split.LanguageError{Lang: "*", Err: err})
	}
	codes, err := SelectedLanguages(nil)
	if err != nil {
		return err
	}
	prefix := log.Prefix()
	for _, lang := range sigmorphon.Select(langs, codes) {
		log.SetPrefix(fmt.Sprintf("%v%s ", prefix, lang.Code))
		for _, in := range []string{lang.Train, lang.Dev, lang.Test} {
			if err := convert(in, mode); err != nil {
				log.Println("Failed:", err)
				failures = append(failures, &split.LanguageError{Lang: lang.Code, Err: err})
				break
			}
		}
	}
	log.SetPrefix(prefix)
	return ReportFailures(failures)
}

func TSVCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TSV,
		UsageLine: "tsv <file options> [arguments]",
		Short:     "convert split files to seq2seq source/target pairs",
		Long: `
convert split files to seq2seq source/target pairs

Convert every language of a generated split:

	$ ./morphsplit tsv -in <split dir> -out <output dir> [-mode inflection]

or a single file (inflection or reinflection format):

	$ ./morphsplit tsv -f <file> -out <output dir> [-mode reinflection]

`,
		Flag: *flag.NewFlagSet("tsv", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inDir, "in", "", "Split directory written by the split command")
	cmd.Flag.StringVar(&inFile, "f", "", "Single input file")
	cmd.Flag.StringVar(&outDir, "out", "", "Output directory")
	cmd.Flag.StringVar(&tsvMode, "mode", string(tsv.INFLECTION), "Input format: inflection or reinflection")
	cmd.Flag.StringVar(&langList, "langs", "", "Comma separated language codes (default: all)")
	return cmd
}
