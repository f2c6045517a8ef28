package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/wordfamilies.yaml data/catalog.schema.json
var dataFS embed.FS

const schemaURL = "schema://catalog.json"

// document is the on-disk catalog layout.
type document struct {
	Groups []Group `yaml:"groups"`
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := dataFS.ReadFile("data/catalog.schema.json")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

var defaultCatalog = sync.OnceValues(func() (*MemoryCatalog, error) {
	f, err := dataFS.Open("data/wordfamilies.yaml")
	if err != nil {
		return nil, fmt.Errorf("open built-in catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
})

// Default returns the built-in word family catalog.
func Default() (*MemoryCatalog, error) {
	return defaultCatalog()
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*MemoryCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Load parses a YAML catalog, checks it against the catalog schema and
// normalizes group ids to lower case.
func Load(r io.Reader) (*MemoryCatalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	for i := range doc.Groups {
		doc.Groups[i].ID = NormalizeID(string(doc.Groups[i].ID))
	}
	return New(doc.Groups)
}

// NormalizeID trims and lower-cases a user supplied group id.
func NormalizeID(raw string) GroupID {
	return GroupID(cases.Lower(language.Und).String(strings.TrimSpace(raw)))
}

// validate checks raw YAML against the embedded JSON schema.
func validate(data []byte) error {
	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	// The schema library wants JSON-shaped values, so round-trip through JSON.
	b, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}
