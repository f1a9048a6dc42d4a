package split

import (
	"os"
	"path/filepath"
	"time"

	"morphsplit/util"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

const MANIFEST_FILE = "manifest.yaml"

// A Manifest records everything needed to reproduce and verify a split run
type Manifest struct {
	RunID     string    `yaml:"run id"`
	Created   string    `yaml:"created"`
	Input     string    `yaml:"input"`
	Output    string    `yaml:"output"`
	Config    Config    `yaml:"config"`
	Languages []*Report `yaml:"languages"`
	Failed    []string  `yaml:"failed,omitempty"`
}

func NewManifest(c Config, input, output string) *Manifest {
	return &Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC().Format(time.RFC3339),
		Input:   input,
		Output:  output,
		Config:  c,
	}
}

func (m *Manifest) Add(r *Report) {
	m.Languages = append(m.Languages, r)
}

func (m *Manifest) Fail(errs BatchErrors) {
	m.Failed = append(m.Failed, errs.Langs()...)
}

// Report returns the report of lang
func (m *Manifest) Report(lang string) (*Report, bool) {
	for _, r := range m.Languages {
		if r.Lang == lang {
			return r, true
		}
	}
	return nil, false
}

// Path of the manifest of a split written under root
func ManifestPath(root string) string {
	return filepath.Join(root, MANIFEST_FILE)
}

func WriteManifest(filename string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	file, err := util.CreateFile(filename)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func ReadManifest(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	m := new(Manifest)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
