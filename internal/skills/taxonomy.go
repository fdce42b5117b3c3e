package skills

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Category is a named, ordered group of skill keywords.
type Category struct {
	Name     string   `yaml:"name" validate:"required"`
	Keywords []string `yaml:"keywords" validate:"required,min=1,dive,required"`
}

// Taxonomy is the ordered list of categories used for skill extraction.
// It must not be mutated once handed to a Matcher.
type Taxonomy struct {
	Categories []Category `yaml:"categories" validate:"required,min=1,dive"`
}

// ErrDuplicate is wrapped by Validate when a category or keyword repeats.
var ErrDuplicate = errors.New("duplicate taxonomy entry")

// DefaultTaxonomy returns the built-in taxonomy.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{Categories: []Category{
		{Name: "Programming Languages", Keywords: []string{"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust", "swift", "kotlin"}},
		{Name: "Web Development", Keywords: []string{"react", "angular", "vue", "django", "flask", "node.js", "html", "css", "express"}},
		{Name: "Databases", Keywords: []string{"sql", "mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite"}},
		{Name: "Cloud & DevOps", Keywords: []string{"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins", "terraform"}},
		{Name: "Tools", Keywords: []string{"git", "github", "gitlab", "jira", "confluence", "figma", "postman"}},
		{Name: "Data Science", Keywords: []string{"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "tableau", "power bi"}},
		{Name: "Soft Skills", Keywords: []string{"leadership", "communication", "teamwork", "problem solving", "critical thinking"}},
	}}
}

// LoadTaxonomy reads a YAML taxonomy from path, normalizes and validates it.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}
	t.normalize()
	if err := t.Validate(); err != nil {
		return Taxonomy{}, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Validate checks required fields and uniqueness of category names and of
// keywords within a category.
func (t Taxonomy) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return err
	}
	names := make(map[string]struct{}, len(t.Categories))
	for _, c := range t.Categories {
		if _, ok := names[c.Name]; ok {
			return fmt.Errorf("%w: category %q", ErrDuplicate, c.Name)
		}
		names[c.Name] = struct{}{}
		seen := make(map[string]struct{}, len(c.Keywords))
		for _, kw := range c.Keywords {
			if _, ok := seen[kw]; ok {
				return fmt.Errorf("%w: keyword %q in category %q", ErrDuplicate, kw, c.Name)
			}
			seen[kw] = struct{}{}
		}
	}
	return nil
}

// Names returns category names in taxonomy order.
func (t Taxonomy) Names() []string {
	out := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		out[i] = c.Name
	}
	return out
}

// Marshal renders the taxonomy as YAML.
func (t Taxonomy) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

func (t *Taxonomy) normalize() {
	for i := range t.Categories {
		c := &t.Categories[i]
		c.Name = strings.TrimSpace(c.Name)
		for j, kw := range c.Keywords {
			c.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
}
