// Package config loads nfsf settings from TOML or YAML files.
//
// A config file sits between the built-in defaults and command-line flags:
// values it sets replace defaults, and flags replace both. The format is
// chosen by file extension.
//
//	# nfsf.toml
//	policy = "bounded"
//	max_depth = 8
//
//	[render]
//	stroke = "darkgreen"
//	fit = true
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/nfsf/pkg/errors"
)

// Load reads the config file at path. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Load(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return decodeTOML(path, data)
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	default:
		return FileConfig{}, errors.New(errors.ErrCodeInvalidInput,
			"config %s: unsupported extension %q (must be one of: .toml, .yaml, .yml)", path, ext)
	}
}

func decodeTOML(path string, data []byte) (FileConfig, error) {
	var fc FileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return FileConfig{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return fc, nil
}

func decodeYAML(path string, data []byte) (FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and means "nothing set".
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return FileConfig{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return fc, nil
}
