package problem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Decode.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatOf maps a file extension (".yaml", ".yml", ".toml", with or without
// the dot, any case) to a Decode format.
func FormatOf(ext string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Decode reads a single problem from r and validates it.
func Decode(r io.Reader, format string) (*Problem, error) {
	format, err := FormatOf(format)
	if err != nil {
		return nil, err
	}

	var p Problem
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err = dec.Decode(&p); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: empty document", ErrBadProblem)
			}
			return nil, fmt.Errorf("%w: %w", ErrBadProblem, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadProblem, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%w: unknown keys %s", ErrBadProblem, strings.Join(keys, ", "))
		}
	}

	if err = p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Load decodes the file at path, picking the format from its extension.
// A problem without a name is named after the file.
func Load(path string) (*Problem, error) {
	format, err := FormatOf(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return p, nil
}
