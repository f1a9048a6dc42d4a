package tsv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"morphsplit/nlp/format/sigmorphon"
	nlp "morphsplit/nlp/types"
)

func TestInflect(t *testing.T) {
	sample := Inflect(nlp.Record{Lemma: "run", Form: "ran", Tag: "V;PST"})
	if sample.Src != "r,u,n,$,V,PST" {
		t.Errorf("Unexpected source %s", sample.Src)
	}
	if sample.Trg != "r,a,n" {
		t.Errorf("Unexpected target %s", sample.Trg)
	}
	if sample.String() != "r,u,n,$,V,PST\tr,a,n" {
		t.Errorf("Unexpected line %q", sample.String())
	}
}

func TestInflectMultibyte(t *testing.T) {
	sample := Inflect(nlp.Record{Lemma: "\u00f6l", Form: "\u00f6ller", Tag: "N;PL"})
	if sample.Src != "\u00f6,l,$,N,PL" {
		t.Errorf("Expected characters split by code point, got %s", sample.Src)
	}
}

func TestReinflect(t *testing.T) {
	sample := Reinflect("V;PRS", "runs", "V;PST", "ran")
	if sample.Src != "V,PRS,+,r,u,n,s,+,V,PST" {
		t.Errorf("Unexpected source %s", sample.Src)
	}
	if sample.Trg != "r,a,n" {
		t.Errorf("Unexpected target %s", sample.Trg)
	}
}

func TestConvert(t *testing.T) {
	var out bytes.Buffer
	num, err := Convert(strings.NewReader("cat\tcats\tN;PL\n\ndog\tdogs\tN;PL\n"), &out, INFLECTION)
	if err != nil {
		t.Fatal(err)
	}
	if num != 2 {
		t.Errorf("Expected 2 samples, got %d", num)
	}
	expected := "c,a,t,$,N,PL\tc,a,t,s\nd,o,g,$,N,PL\td,o,g,s\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestConvertWrongFields(t *testing.T) {
	var out bytes.Buffer
	_, err := Convert(strings.NewReader("cat\tcats\tN;PL\n"), &out, REINFLECTION)
	var malformed *sigmorphon.MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedRecordError, got %v", err)
	}
	if malformed.Want != 4 || malformed.Fields != 3 {
		t.Errorf("Expected 4 wanted / 3 found, got %d / %d", malformed.Want, malformed.Fields)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fin.trn")
	if err := os.WriteFile(in, []byte("V;PRS\truns\tV;PST\tran\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := OutputName(filepath.Join(dir, "tsv"), in)
	if out != filepath.Join(dir, "tsv", "fin.trn.tsv") {
		t.Errorf("Unexpected output name %s", out)
	}
	num, err := ConvertFile(in, out, REINFLECTION)
	if err != nil {
		t.Fatal(err)
	}
	if num != 1 {
		t.Errorf("Expected 1 sample, got %d", num)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "V,PRS,+,r,u,n,s,+,V,PST\tr,a,n\n" {
		t.Errorf("Unexpected output %q", string(data))
	}
}

func TestParseMode(t *testing.T) {
	if mode, _ := ParseMode(""); mode != INFLECTION {
		t.Errorf("Expected default inflection, got %s", mode)
	}
	if _, err := ParseMode("translation"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
