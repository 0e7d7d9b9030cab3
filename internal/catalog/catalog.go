package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// defaultCatalog is the package-level catalog, set by init() from the embedded data file.
var defaultCatalog *Catalog

func init() {
	c, err := Load(bytes.NewReader(embeddedCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	defaultCatalog = c
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	return defaultCatalog
}

// Catalog is the static, read-only content of an assessment.
// The first section is the introduction and never has scenarios.
type Catalog struct {
	Version  string    `yaml:"version" json:"version"`
	Title    string    `yaml:"title" json:"title"`
	Sections []Section `yaml:"sections" json:"sections"`

	questions map[string]Question
}

// Load parses and validates a catalog document in YAML form.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateCatalog(&c); err != nil {
		return nil, err
	}

	c.buildIndex()
	return &c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) buildIndex() {
	c.questions = make(map[string]Question)
	for _, sec := range c.Sections {
		for _, sc := range sec.Scenarios {
			for _, q := range sc.Questions {
				c.questions[q.ID] = q
			}
		}
	}
}

// Len returns the number of sections, including the introduction.
func (c *Catalog) Len() int {
	return len(c.Sections)
}

// Section returns the section at index i.
func (c *Catalog) Section(i int) (Section, bool) {
	if i < 0 || i >= len(c.Sections) {
		return Section{}, false
	}
	return c.Sections[i], true
}

// Scenario returns the scenario at the given section and scenario indices.
func (c *Catalog) Scenario(sectionIdx, scenarioIdx int) (Scenario, bool) {
	sec, ok := c.Section(sectionIdx)
	if !ok {
		return Scenario{}, false
	}
	if scenarioIdx < 0 || scenarioIdx >= len(sec.Scenarios) {
		return Scenario{}, false
	}
	return sec.Scenarios[scenarioIdx], true
}

// Question looks up a question by id across the whole catalog.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.questions[id]
	return q, ok
}

// QuestionCount returns the number of questions in the catalog.
func (c *Catalog) QuestionCount() int {
	return len(c.questions)
}

// ScoredSections returns every section after the introduction.
func (c *Catalog) ScoredSections() []Section {
	if len(c.Sections) <= 1 {
		return nil
	}
	return c.Sections[1:]
}

// LastSectionIndex returns the index of the final section.
func (c *Catalog) LastSectionIndex() int {
	return len(c.Sections) - 1
}

// JSON renders the catalog as indented JSON.
func (c *Catalog) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
