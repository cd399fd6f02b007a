package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a settings file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Join(ErrUnsupportedFormat, fmt.Errorf("file %q", path))
	}
}

// LoadFile decodes the settings file at path into v. Keys missing from the
// file leave the corresponding fields of v untouched, so v can be
// pre-populated with defaults.
func LoadFile(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	return Decode(data, format, v)
}

// Decode unmarshals data in the given format into v.
func Decode(data []byte, format Format, v any) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	case FormatTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(v)
	case FormatJSON:
		err = json.Unmarshal(data, v)
	default:
		return errors.Join(ErrUnsupportedFormat, fmt.Errorf("format %q", format))
	}

	if err != nil {
		return errors.Join(ErrDecodingFile, err)
	}
	return nil
}
