package app

import (
	"fmt"
	"log"

	"morphsplit/nlp/format/sigmorphon"
	"morphsplit/nlp/split"
	"morphsplit/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	seed                int
	seedMode, splitMode string
	pTrain, pDev, pTest float64
	normalize, preAudit bool
)

// SplitFile is the YAML form of a split configuration
type SplitFile struct {
	split.Config `yaml:",inline"`
	Languages    []string `yaml:"languages"`
}

// SplitSetup builds the run configuration: defaults, then the -conf file,
// then flags given on the command line
func SplitSetup(cmd *commander.Command) (split.Config, []string, error) {
	file := SplitFile{Config: split.DEFAULT_CONFIG}
	if len(confFile) > 0 {
		if err := conf.LoadYAMLFile(confFile, &file); err != nil {
			return file.Config, nil, fmt.Errorf("reading config %s: %w", confFile, err)
		}
	}
	c := file.Config
	set := SetFlags(cmd)
	if set["seed"] {
		c.Seed = int64(seed)
	}
	if set["seedmode"] {
		c.SeedMode = split.SeedMode(seedMode)
	}
	if set["mode"] {
		c.Mode = split.Mode(splitMode)
	}
	if set["train"] {
		c.Proportions.Train = pTrain
	}
	if set["dev"] {
		c.Proportions.Dev = pDev
	}
	if set["test"] {
		c.Proportions.Test = pTest
	}
	if set["nfc"] {
		c.Normalize = normalize
	}
	var err error
	if c.SeedMode, err = split.ParseSeedMode(string(c.SeedMode)); err != nil {
		return c, nil, err
	}
	if c.Mode, err = split.ParseMode(string(c.Mode)); err != nil {
		return c, nil, err
	}
	if err := c.Validate(); err != nil {
		return c, nil, err
	}
	codes, err := SelectedLanguages(file.Languages)
	return c, codes, err
}

func SplitConfigOut(c split.Config, codes []string) {
	log.Println("Configuration")
	log.Printf("Mode:\t\t\t%s", c.Mode)
	log.Printf("Proportions:\t\ttrain %v, dev %v, test %v", c.Proportions.Train, c.Proportions.Dev, c.Proportions.Test)
	log.Printf("Seed:\t\t\t%d (%s)", c.Seed, c.SeedMode)
	log.Printf("NFC:\t\t\t%v", c.Normalize)
	if len(codes) > 0 {
		log.Printf("Languages:\t\t%v", codes)
	} else {
		log.Printf("Languages:\t\tall")
	}
	log.Println()
	log.Println("Data")
	log.Printf("Input:\t\t\t%s", inDir)
	log.Printf("Output:\t\t\t%s", outDir)
	log.Println()
}

// withoutFailed drops the languages that have a failure in failures
func withoutFailed(langs []sigmorphon.Language, failures split.BatchErrors) []sigmorphon.Language {
	if len(failures) == 0 {
		return langs
	}
	failed := make(map[string]bool, len(failures))
	for _, lang := range failures.Langs() {
		failed[lang] = true
	}
	retval := make([]sigmorphon.Language, 0, len(langs))
	for _, lang := range langs {
		if !failed[lang.Code] {
			retval = append(retval, lang)
		}
	}
	return retval
}

func Split(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"in", "out"}
	if err := VerifyFlags(cmd, REQUIRED_FLAGS); err != nil {
		return err
	}
	c, codes, err := SplitSetup(cmd)
	if err != nil {
		return err
	}
	SplitConfigOut(c, codes)
	if !VerifyExists(inDir) {
		return fmt.Errorf("input directory %s not accessible", inDir)
	}

	langs, failures := DiscoverLanguages(codes)
	if allOut {
		log.Println("Found", len(langs), "languages")
	}
	if preAudit {
		auditFailures := AuditLanguages(langs)
		failures = append(failures, auditFailures...)
		langs = withoutFailed(langs, auditFailures)
	}

	manifest := split.NewManifest(c, inDir, outDir)
	prefix := log.Prefix()
	for i, lang := range langs {
		log.SetPrefix(fmt.Sprintf("%v%s ", prefix, lang.Code))
		report, err := split.Generate(lang, outDir, c)
		if err != nil {
			log.Println("Failed:", err)
			failures = append(failures, &split.LanguageError{Lang: lang.Code, Err: err})
			continue
		}
		if report.Overlap.Leaks() {
			log.Println("Warning: LeakageDetected in generated split", report.Overlap)
		}
		manifest.Add(report)
		if allOut {
			log.Printf("%d. Generated %s-split datasets: %d lemmas, %d records (train %d, dev %d, test %d)",
				i+1, c.Mode, report.Lemmas, report.Records, report.Train.Records, report.Dev.Records, report.Test.Records)
		}
	}
	log.SetPrefix(prefix)

	manifest.Fail(failures)
	manifestFile := split.ManifestPath(outDir)
	if err := split.WriteManifest(manifestFile, manifest); err != nil {
		return fmt.Errorf("writing manifest %s: %w", manifestFile, err)
	}
	if allOut {
		log.Println("Wrote manifest", manifestFile, "for run", manifest.RunID)
	}
	return ReportFailures(failures)
}

func SplitCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Split,
		UsageLine: "split <file options> [arguments]",
		Short:     "regenerate train/dev/test splits of a SIGMORPHON release",
		Long: `
regenerate train/dev/test splits of a SIGMORPHON release

In lemma mode no lemma appears in more than one partition. Output files are
written to <out>/<family>/<lang>.{trn,dev,tst,tst.nogold} with a manifest.yaml
describing the run.

	$ ./morphsplit split -in <release dir> -out <output dir> [-conf <split.yaml>] [options]

`,
		Flag: *flag.NewFlagSet("split", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inDir, "in", "", "SIGMORPHON release directory (containing GOLD-TEST etc.)")
	cmd.Flag.StringVar(&outDir, "out", "", "Output directory")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML split configuration file")
	cmd.Flag.IntVar(&seed, "seed", 1, "Shuffle seed")
	cmd.Flag.StringVar(&seedMode, "seedmode", string(split.SEED_FIXED), "Per-language seed: fixed (same seed for all) or lang (seed mixed with language code)")
	cmd.Flag.StringVar(&splitMode, "mode", string(split.LEMMA_SPLIT), "Split unit: lemma or form")
	cmd.Flag.Float64Var(&pTrain, "train", split.DEFAULT_PROPORTIONS.Train, "Train proportion")
	cmd.Flag.Float64Var(&pDev, "dev", split.DEFAULT_PROPORTIONS.Dev, "Dev proportion")
	cmd.Flag.Float64Var(&pTest, "test", split.DEFAULT_PROPORTIONS.Test, "Test proportion")
	cmd.Flag.StringVar(&langList, "langs", "", "Comma separated language codes (default: all)")
	cmd.Flag.StringVar(&langFile, "langfile", "", "File listing language codes, one per line")
	cmd.Flag.BoolVar(&normalize, "nfc", false, "Normalize records to Unicode NFC")
	cmd.Flag.BoolVar(&preAudit, "audit", false, "Audit the input splits for lemma leakage first")
	return cmd
}
