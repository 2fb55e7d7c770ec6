package character

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dimillian/daggerfall-unity/internal/game/lookup"
)

// LoadCareers reads all .yaml files in dir and parses each as a Career.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed, validated careers (may be empty slice) or a non-nil error.
func LoadCareers(dir string) ([]*Career, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	careers := make([]*Career, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c Career
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing career file %s: %w", path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		careers = append(careers, &c)
	}
	return careers, nil
}

// Careers provides lookup of careers by ID.
type Careers struct {
	careers map[string]*Career
}

// NewCareers returns a registry holding the given careers.
//
// Precondition: every career must be non-nil with a non-empty ID.
// Postcondition: if two careers share an ID, the later one wins.
func NewCareers(careers []*Career) *Careers {
	r := &Careers{careers: make(map[string]*Career, len(careers))}
	for _, c := range careers {
		r.careers[c.ID] = c
	}
	return r
}

// Career returns the career registered under id.
//
// Postcondition: Returns a *lookup.Error wrapping lookup.ErrNotFound when id is unknown.
func (r *Careers) Career(id string) (*Career, error) {
	c, ok := r.careers[id]
	if !ok {
		return nil, lookup.NotFound("career", id)
	}
	return c, nil
}

// Len returns the number of registered careers.
func (r *Careers) Len() int { return len(r.careers) }

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
