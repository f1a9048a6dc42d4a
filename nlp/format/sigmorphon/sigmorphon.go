// Package sigmorphon reads and writes SIGMORPHON inflection files
// Each non-blank line is a record: lemma<TAB>form<TAB>tag
// Blind (no-gold) test files keep the three fields with an empty form
package sigmorphon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	nlp "morphsplit/nlp/types"
	"morphsplit/util"

	"golang.org/x/text/unicode/norm"
)

const (
	FIELD_SEPARATOR = "\t"
	NUM_FIELDS      = 3
	MAX_LINE_SIZE   = 1024 * 1024
)

// A MalformedRecordError reports a non-blank line with the wrong number of
// fields
type MalformedRecordError struct {
	File   string
	Line   int
	Fields int
	Want   int
}

func (e *MalformedRecordError) Error() string {
	file := e.File
	if len(file) == 0 {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d: malformed record, expected %d tab-separated fields but found %d", file, e.Line, e.Want, e.Fields)
}

// A MissingPathError reports an expected per-language file that is absent
type MissingPathError struct {
	Lang string
	Kind string
	Path string
}

func (e *MissingPathError) Error() string {
	if len(e.Lang) == 0 {
		return fmt.Sprintf("missing %s file: %s", e.Kind, e.Path)
	}
	if len(e.Path) == 0 {
		return fmt.Sprintf("missing %s file for language %s", e.Kind, e.Lang)
	}
	return fmt.Sprintf("missing %s file for language %s: %s", e.Kind, e.Lang, e.Path)
}

// IsBlank reports whether line carries no record
func IsBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}

// SplitLine splits a line into exactly want tab-separated fields. The line
// number is only used for error reporting.
func SplitLine(line string, lineNum, want int) ([]string, error) {
	line = strings.Trim(line, " \r\n")
	fields := strings.Split(line, FIELD_SEPARATOR)
	if len(fields) != want {
		return nil, &MalformedRecordError{Line: lineNum, Fields: len(fields), Want: want}
	}
	return fields, nil
}

func ParseRecord(line string, lineNum int) (nlp.Record, error) {
	fields, err := SplitLine(line, lineNum, NUM_FIELDS)
	if err != nil {
		return nlp.Record{}, err
	}
	return nlp.Record{Lemma: fields[0], Form: fields[1], Tag: fields[2]}, nil
}

// NFC returns the record with every field in Unicode normalization form C
func NFC(r nlp.Record) nlp.Record {
	return nlp.Record{
		Lemma: norm.NFC.String(r.Lemma),
		Form:  norm.NFC.String(r.Form),
		Tag:   norm.NFC.String(r.Tag),
	}
}

// Scan calls fn for every non-blank line of reader with its 1-based line number
func Scan(reader io.Reader, fn func(line string, lineNum int) error) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE_SIZE)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if IsBlank(line) {
			continue
		}
		if err := fn(line, lineNum); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func Read(reader io.Reader) ([]nlp.Record, error) {
	records := make([]nlp.Record, 0, 1000)
	err := Scan(reader, func(line string, lineNum int) error {
		record, err := ParseRecord(line, lineNum)
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func ReadFile(filename string) ([]nlp.Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := Read(file)
	return records, WithFile(err, filename)
}

// ReadLemmas returns the set of lemmas (first field) found in reader; other
// fields are neither read nor validated
func ReadLemmas(reader io.Reader) (map[string]bool, error) {
	lemmas := make(map[string]bool)
	err := Scan(reader, func(line string, _ int) error {
		lemma := strings.SplitN(line, FIELD_SEPARATOR, 2)[0]
		lemmas[lemma] = true
		return nil
	})
	return lemmas, err
}

func ReadLemmasFile(filename string) (map[string]bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadLemmas(file)
}

// WithFile attaches filename to a MalformedRecordError
func WithFile(err error, filename string) error {
	var malformed *MalformedRecordError
	if errors.As(err, &malformed) && len(malformed.File) == 0 {
		malformed.File = filename
	}
	return err
}

func write(writer io.Writer, records []nlp.Record, masked bool) error {
	bufWriter := bufio.NewWriter(writer)
	for _, record := range records {
		if masked {
			record = record.Masked()
		}
		if _, err := bufWriter.WriteString(record.String()); err != nil {
			return err
		}
		if err := bufWriter.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bufWriter.Flush()
}

// Write writes gold records: lemma<TAB>form<TAB>tag
func Write(writer io.Writer, records []nlp.Record) error {
	return write(writer, records, false)
}

// WriteMasked writes records with a blanked form: lemma<TAB><TAB>tag
func WriteMasked(writer io.Writer, records []nlp.Record) error {
	return write(writer, records, true)
}

func writeFile(filename string, records []nlp.Record, masked bool) error {
	file, err := util.CreateFile(filename)
	if err != nil {
		return err
	}
	if err := write(file, records, masked); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func WriteFile(filename string, records []nlp.Record) error {
	return writeFile(filename, records, false)
}

func WriteMaskedFile(filename string, records []nlp.Record) error {
	return writeFile(filename, records, true)
}
