package conf

import (
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Conf is a plain list file: one value per line, '#' starts a comment line
type Conf struct {
	Values []string
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	retval := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 0 && line[0] != '#' {
			retval = append(retval, line)
		}
	}
	return &Conf{retval}, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// LoadYAML decodes a YAML document into out; unknown keys are an error
func LoadYAML(data []byte, out interface{}) error {
	return yaml.UnmarshalStrict(data, out)
}

func LoadYAMLFile(filename string, out interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return LoadYAML(data, out)
}

// SplitList splits a comma separated flag value, dropping empty items
func SplitList(value string) []string {
	var retval []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); len(item) > 0 {
			retval = append(retval, item)
		}
	}
	return retval
}
