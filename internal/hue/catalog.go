package hue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tincture/internal/security"
)

// MaxCatalogSize bounds how many decoded bytes a catalog file may produce.
const MaxCatalogSize = 4 * 1024 * 1024

// ErrUnsupportedFormat is returned for catalog files that are not JSON or YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format is a catalog serialisation format.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// CatalogEntry describes one named hue in a catalog file. Hues are written in
// degrees since that is how people think about the wheel.
type CatalogEntry struct {
	Name    string  `json:"name" yaml:"name"`
	Degrees float64 `json:"degrees" yaml:"degrees"`
	Primary bool    `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Catalog is a set of custom hues that can be loaded into a Registry.
type Catalog struct {
	Hues []CatalogEntry `json:"hues" yaml:"hues"`
}

// Add appends an entry, replacing any existing entry with the same name.
func (c *Catalog) Add(e CatalogEntry) {
	for i := range c.Hues {
		if c.Hues[i].Name == e.Name {
			c.Hues[i] = e
			return
		}
	}
	c.Hues = append(c.Hues, e)
}

// FormatForPath picks the catalog format from the file extension and reports
// whether the file is xz compressed, e.g. "hues.yaml.xz".
func FormatForPath(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, ".xz")
	name = strings.TrimSuffix(name, ".xz")

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	default:
		return "", false, fmt.Errorf("%w: %s (supported: .json, .yaml, .yml, optionally .xz)", ErrUnsupportedFormat, path)
	}
}

// ReadCatalog decodes a catalog from r.
func ReadCatalog(r io.Reader, format Format) (*Catalog, error) {
	var c Catalog
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode JSON catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	for i, e := range c.Hues {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: %w", i, ErrEmptyName)
		}
	}
	return &c, nil
}

// WriteCatalog encodes c to w.
func WriteCatalog(w io.Writer, c *Catalog, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode JSON catalog: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode YAML catalog: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML catalog: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return nil
}

// LoadCatalog reads a catalog file, decompressing it first if it ends in .xz.
func LoadCatalog(path string) (*Catalog, error) {
	if err := security.ValidateCatalogPath(path); err != nil {
		return nil, err
	}
	format, compressed, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 - User-specified catalog file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	}

	c, err := ReadCatalog(security.NewLimitedReader(r, MaxCatalogSize), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// SaveCatalog writes c to path, compressing it if the path ends in .xz. The
// catalog is written to a temporary file in the same directory and renamed
// over path, so a failed save leaves any existing file untouched.
func SaveCatalog(path string, c *Catalog) (err error) {
	if err := security.ValidateCatalogPath(path); err != nil {
		return err
	}
	format, compressed, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := f.Chmod(catalogFileMode); err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	if err := encodeCatalog(f, c, format, compressed); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	return nil
}

const catalogFileMode = 0o644

func encodeCatalog(w io.Writer, c *Catalog, format Format, compressed bool) error {
	if !compressed {
		return WriteCatalog(w, c, format)
	}

	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if err := WriteCatalog(xzw, c, format); err != nil {
		_ = xzw.Close()
		return err
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}

// Import registers every entry of c, returning how many were registered.
func (r *Registry) Import(c *Catalog) (int, error) {
	if c == nil {
		return 0, nil
	}
	for i, e := range c.Hues {
		if err := r.Register(e.Name, FromDegrees(e.Degrees), e.Primary); err != nil {
			return i, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return len(c.Hues), nil
}

// Export returns the registry contents as a catalog, in hue order.
func (r *Registry) Export() *Catalog {
	all := r.All()
	c := &Catalog{Hues: make([]CatalogEntry, 0, len(all))}
	for _, n := range all {
		c.Hues = append(c.Hues, CatalogEntry{Name: n.Name, Degrees: n.Degrees(), Primary: n.Primary})
	}
	return c
}

// LoadFile loads the catalog at path into the registry.
func (r *Registry) LoadFile(path string) (int, error) {
	c, err := LoadCatalog(path)
	if err != nil {
		return 0, err
	}
	n, err := r.Import(c)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.Debug("loaded hue catalog", "path", path, "hues", n)
	return n, nil
}
