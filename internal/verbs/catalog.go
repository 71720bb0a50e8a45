package verbs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed data/verbs.json
var defaultData []byte

// ErrEmptyCatalog is returned when a catalog source holds no verbs.
var ErrEmptyCatalog = errors.New("verb catalog is empty")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is an immutable, ordered collection of verbs keyed by infinitive.
type Catalog struct {
	verbs []Verb
	index map[string]int
}

// NewCatalog validates the records and builds a catalog.
func NewCatalog(records []Verb) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		verbs: make([]Verb, 0, len(records)),
		index: make(map[string]int, len(records)),
	}
	for i, v := range records {
		if err := validateVerb(v); err != nil {
			return nil, fmt.Errorf("verb %d (%s): %w", i+1, v.Infinitive, err)
		}
		if _, dup := c.index[v.Infinitive]; dup {
			return nil, fmt.Errorf("verb %d: duplicate infinitive %q", i+1, v.Infinitive)
		}
		c.index[v.Infinitive] = len(c.verbs)
		c.verbs = append(c.verbs, v.clone())
	}
	return c, nil
}

// Parse decodes a JSON array of verb records.
func Parse(r io.Reader) (*Catalog, error) {
	var records []Verb
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode verbs: %w", err)
	}
	return NewCatalog(records)
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only catalog.
			_ = cerr
		}
	}()
	return Parse(file)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultData))
}

// Len returns the number of verbs.
func (c *Catalog) Len() int {
	return len(c.verbs)
}

// All returns a copy of every verb in catalog order.
func (c *Catalog) All() []Verb {
	return c.Filter(TypeAll)
}

// Filter returns copies of the verbs kept by the type filter.
func (c *Catalog) Filter(f TypeFilter) []Verb {
	out := make([]Verb, 0, len(c.verbs))
	for _, v := range c.verbs {
		if f.keep(v) {
			out = append(out, v.clone())
		}
	}
	return out
}

// Get looks up a verb by infinitive.
func (c *Catalog) Get(infinitive string) (Verb, bool) {
	i, ok := c.index[strings.TrimSpace(infinitive)]
	if !ok {
		return Verb{}, false
	}
	return c.verbs[i].clone(), true
}

func validateVerb(v Verb) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return describeValidation(verrs)
		}
		return err
	}
	for _, forms := range []map[Subject]Form{v.Present, v.Imperfekt, v.Perfekt} {
		for _, s := range Subjects {
			if hasEmptyAlternative(forms[s].German) {
				return fmt.Errorf("%s form %q has an empty alternative", s, forms[s].German)
			}
		}
	}
	for _, s := range Subjects {
		if len(strings.Fields(v.Perfekt[s].German)) < 2 {
			return fmt.Errorf("perfekt[%s] %q must be \"<auxiliary> <participle>\"", s, v.Perfekt[s].German)
		}
	}
	return nil
}

func hasEmptyAlternative(template string) bool {
	for _, tok := range strings.Fields(template) {
		if !strings.Contains(tok, "/") {
			continue
		}
		for _, alt := range strings.Split(tok, "/") {
			if alt == "" {
				return true
			}
		}
	}
	return false
}

func describeValidation(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must have all %s subjects", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s has unknown subject %v", fe.Namespace(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
