// Package tsv converts SIGMORPHON files into source/target pairs for a
// character-level sequence-to-sequence model. Each side is a comma separated
// list of symbols: characters of a word form and the features of a tag.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"morphsplit/nlp/format/sigmorphon"
	nlp "morphsplit/nlp/types"
	"morphsplit/util"
)

const (
	SYMBOL_SEPARATOR = ","
	// LEMMA_MARKER separates lemma characters from the target features. '+'
	// is avoided since it occurs inside some tags.
	LEMMA_MARKER = "$"
	// FORM_MARKER delimits the source form in reinflection samples
	FORM_MARKER = "+"
)

type Mode string

const (
	// INFLECTION lines are lemma<TAB>form<TAB>tag
	INFLECTION Mode = "inflection"
	// REINFLECTION lines are src_tag<TAB>src_form<TAB>trg_tag<TAB>trg_form
	REINFLECTION Mode = "reinflection"
)

func ParseMode(s string) (Mode, error) {
	switch mode := Mode(s); mode {
	case INFLECTION, REINFLECTION:
		return mode, nil
	case "":
		return INFLECTION, nil
	default:
		return "", fmt.Errorf("unknown conversion mode %q (expected %s or %s)", s, INFLECTION, REINFLECTION)
	}
}

func (m Mode) NumFields() int {
	if m == REINFLECTION {
		return 4
	}
	return sigmorphon.NUM_FIELDS
}

// A Sample is one model input/output pair
type Sample struct {
	Src, Trg string
}

func (s Sample) String() string {
	return s.Src + "\t" + s.Trg
}

// Chars splits a word into its Unicode code points
func Chars(word string) []string {
	retval := make([]string, 0, len(word))
	for _, r := range word {
		retval = append(retval, string(r))
	}
	return retval
}

func features(tag string) []string {
	return strings.Split(tag, nlp.FEATURE_SEPARATOR)
}

func join(parts ...[]string) string {
	var num int
	for _, p := range parts {
		num += len(p)
	}
	symbols := make([]string, 0, num)
	for _, p := range parts {
		symbols = append(symbols, p...)
	}
	return strings.Join(symbols, SYMBOL_SEPARATOR)
}

// Inflect makes the sample lemma chars,$,features -> form chars
func Inflect(r nlp.Record) Sample {
	return Sample{
		Src: join(Chars(r.Lemma), []string{LEMMA_MARKER}, features(r.Tag)),
		Trg: join(Chars(r.Form)),
	}
}

// Reinflect makes the sample src features,+,src chars,+,trg features -> trg chars
func Reinflect(srcTag, srcForm, trgTag, trgForm string) Sample {
	return Sample{
		Src: join(features(srcTag), []string{FORM_MARKER}, Chars(srcForm), []string{FORM_MARKER}, features(trgTag)),
		Trg: join(Chars(trgForm)),
	}
}

func ParseSample(line string, lineNum int, mode Mode) (Sample, error) {
	fields, err := sigmorphon.SplitLine(line, lineNum, mode.NumFields())
	if err != nil {
		return Sample{}, err
	}
	if mode == REINFLECTION {
		return Reinflect(fields[0], fields[1], fields[2], fields[3]), nil
	}
	return Inflect(nlp.Record{Lemma: fields[0], Form: fields[1], Tag: fields[2]}), nil
}

// Convert reads lines from reader and writes one sample per line to writer,
// returning the number of samples written
func Convert(reader io.Reader, writer io.Writer, mode Mode) (int, error) {
	bufWriter := bufio.NewWriter(writer)
	var num int
	err := sigmorphon.Scan(reader, func(line string, lineNum int) error {
		sample, err := ParseSample(line, lineNum, mode)
		if err != nil {
			return err
		}
		if _, err := bufWriter.WriteString(sample.String() + "\n"); err != nil {
			return err
		}
		num++
		return nil
	})
	if err != nil {
		return num, err
	}
	return num, bufWriter.Flush()
}

func ConvertFile(inFile, outFile string, mode Mode) (int, error) {
	in, err := os.Open(inFile)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	out, err := util.CreateFile(outFile)
	if err != nil {
		return 0, err
	}
	num, err := Convert(in, out, mode)
	if err != nil {
		out.Close()
		return num, sigmorphon.WithFile(err, inFile)
	}
	return num, out.Close()
}

// OutputName is the name of the converted file of inFile under dir
func OutputName(dir, inFile string) string {
	return filepath.Join(dir, filepath.Base(inFile)+".tsv")
}
