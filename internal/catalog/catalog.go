package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinSDG = 1
	MaxSDG = 17
)

// CareerRecord is a single career the matchers can recommend.
type CareerRecord struct {
	ID          int      `json:"id" validate:"gt=0"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Interests   []string `json:"interests"`
	Skills      []string `json:"skills"`
	SDGs        []int    `json:"sdgs" validate:"dive,min=1,max=17"`
}

// Category groups tags shown together in the questionnaire.
type Category struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// Taxonomy is an ordered list of categories.
type Taxonomy []Category

// Tags returns every tag of the taxonomy in category order.
func (t Taxonomy) Tags() []string {
	tags := make([]string, 0)
	for _, c := range t {
		tags = append(tags, c.Tags...)
	}
	return tags
}

// Find returns the category with the given name.
func (t Taxonomy) Find(name string) (Category, bool) {
	for _, c := range t {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

type SDGGoal struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Catalog is an immutable snapshot of careers and taxonomies.
// It is safe for concurrent use since nothing mutates it after New.
type Catalog struct {
	careers   []CareerRecord
	byID      map[int]int
	interests Taxonomy
	skills    Taxonomy
	source    string
}

// Option customizes a catalog built by New.
type Option func(*Catalog)

// WithTaxonomies overrides the built-in interest and skill taxonomies.
func WithTaxonomies(interests, skills Taxonomy) Option {
	return func(c *Catalog) {
		c.interests = interests
		c.skills = skills
	}
}

// WithSource records where the records were loaded from. Used in errors and logs.
func WithSource(source string) Option {
	return func(c *Catalog) {
		c.source = source
	}
}

var validate = validator.New()

// New validates the records and builds a catalog. Records are copied, so later
// changes to the input slice do not leak into the catalog.
func New(records []CareerRecord, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		interests: DefaultInterests(),
		skills:    DefaultSkills(),
		source:    "literal",
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(records) == 0 {
		return nil, &LoadError{
			Source:   c.source,
			Expected: "at least one career record",
			Found:    "no records",
		}
	}

	c.careers = make([]CareerRecord, 0, len(records))
	c.byID = make(map[int]int, len(records))

	for i, r := range records {
		r = normalizeRecord(r)

		if err := validate.Struct(r); err != nil {
			return nil, &LoadError{
				Source:   c.source,
				Expected: "id > 0, non-empty title and sdgs within 1..17",
				Found:    fmt.Sprintf("record #%d (id %d, title %q)", i+1, r.ID, r.Title),
				Cause:    err,
			}
		}

		if prev, ok := c.byID[r.ID]; ok {
			return nil, &LoadError{
				Source:   c.source,
				Expected: "unique career ids",
				Found:    fmt.Sprintf("id %d used by %q and %q", r.ID, c.careers[prev].Title, r.Title),
			}
		}

		c.byID[r.ID] = len(c.careers)
		c.careers = append(c.careers, r)
	}

	return c, nil
}

func normalizeRecord(r CareerRecord) CareerRecord {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Interests = trimTags(r.Interests)
	r.Skills = trimTags(r.Skills)
	r.SDGs = slices.Clone(r.SDGs)
	return r
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Len returns the number of careers.
func (c *Catalog) Len() int {
	return len(c.careers)
}

// Careers returns a copy of the records in catalog order.
func (c *Catalog) Careers() []CareerRecord {
	out := make([]CareerRecord, len(c.careers))
	for i, r := range c.careers {
		out[i] = r.clone()
	}
	return out
}

// At returns the record at catalog position i. Matchers use it to iterate
// without copying the whole catalog.
func (c *Catalog) At(i int) CareerRecord {
	return c.careers[i]
}

func (c *Catalog) FindByID(id int) (CareerRecord, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return CareerRecord{}, false
	}
	return c.careers[idx].clone(), true
}

func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Position returns the catalog order of the career id, or -1.
func (c *Catalog) Position(id int) int {
	idx, ok := c.byID[id]
	if !ok {
		return -1
	}
	return idx
}

func (c *Catalog) Interests() Taxonomy { return c.interests }

func (c *Catalog) Skills() Taxonomy { return c.skills }

func (c *Catalog) Source() string { return c.source }

func (r CareerRecord) clone() CareerRecord {
	r.Interests = slices.Clone(r.Interests)
	r.Skills = slices.Clone(r.Skills)
	r.SDGs = slices.Clone(r.SDGs)
	return r
}
