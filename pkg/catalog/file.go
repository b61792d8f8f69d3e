package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnsupportedFormat is returned for catalog files that are neither JSON
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// File formats recognized by ReadFile.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

type document struct {
	Products []Product `json:"products" toml:"products"`
}

// FormatOf returns the catalog format implied by a file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadFile loads and validates a catalog file.
func ReadFile(path string) ([]Product, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	products, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return products, nil
}

// Read decodes and validates a catalog in the given format.
func Read(r io.Reader, format string) ([]Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var products []Product
	switch format {
	case FormatJSON:
		products, err = decodeJSON(data)
	case FormatTOML:
		var doc document
		err = toml.Unmarshal(data, &doc)
		products = doc.Products
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(products); err != nil {
		return nil, err
	}
	return products, nil
}

func decodeJSON(data []byte) ([]Product, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, err
		}
		return products, nil
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// WriteFile writes products as JSON or TOML depending on the extension.
func WriteFile(path string, products []Product) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(products)
	case FormatTOML:
		err = toml.NewEncoder(&buf).Encode(document{Products: products})
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
