package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const (
	ColumnCareer      = "career"
	ColumnSubjects    = "subjects"
	ColumnSkillTags   = "skill_tags"
	ColumnSDGTags     = "sdg_tags"
	ColumnDescription = "description"
)

var requiredColumns = []string{ColumnCareer, ColumnSubjects, ColumnSkillTags, ColumnSDGTags}

var firstInteger = regexp.MustCompile(`\d+`)

// LoadFile loads a catalog from a .csv or .json file.
// An empty path returns the built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Expected: "a readable catalog file", Found: "an unreadable path", Cause: err}
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(file, WithSource(path))
	case ".json":
		return LoadJSON(file, WithSource(path))
	default:
		return nil, &LoadError{Source: path, Expected: "a .csv or .json file", Found: fmt.Sprintf("extension %q", ext)}
	}
}

// LoadJSON reads an array of career records.
func LoadJSON(r io.Reader, opts ...Option) (*Catalog, error) {
	source := sourceOf(opts)

	var records []CareerRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, &LoadError{Source: source, Expected: "a JSON array of career records", Found: "malformed JSON", Cause: err}
	}

	return New(records, append([]Option{WithSource(source)}, opts...)...)
}

// LoadCSV reads tabular rows with career, subjects, skill_tags and sdg_tags columns.
// Ids are assigned in row order starting from 1.
func LoadCSV(r io.Reader, opts ...Option) (*Catalog, error) {
	source := sourceOf(opts)

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Source: source, Expected: "a header row", Found: "an empty file"}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Expected: "a CSV header row", Found: "unreadable input", Cause: err}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &LoadError{
			Source:   source,
			Expected: "columns " + strings.Join(requiredColumns, ", "),
			Found:    fmt.Sprintf("header %q (missing %s)", strings.Join(header, ","), strings.Join(missing, ", ")),
		}
	}

	var records []CareerRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: source, Expected: "well-formed CSV rows", Found: fmt.Sprintf("bad row at line %d", line), Cause: err}
		}

		title := strings.TrimSpace(field(row, index, ColumnCareer))
		if title == "" {
			return nil, &LoadError{Source: source, Expected: "a non-empty career column", Found: fmt.Sprintf("blank career at line %d", line)}
		}

		description := strings.TrimSpace(field(row, index, ColumnDescription))
		if description == "" {
			description = placeholderDescription(title)
		}

		records = append(records, CareerRecord{
			ID:          len(records) + 1,
			Title:       title,
			Description: description,
			Interests:   SplitTags(field(row, index, ColumnSubjects)),
			Skills:      SplitTags(field(row, index, ColumnSkillTags)),
			SDGs:        ParseSDGRefs(field(row, index, ColumnSDGTags)),
		})
	}

	return New(records, append([]Option{WithSource(source)}, opts...)...)
}

// SplitTags splits a comma separated list, trimming blanks.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// ParseSDGRefs parses references like "SDG 13, Goal 4 - Education, 7".
// Each entry contributes its first integer when it lies within 1..17; anything else is skipped.
func ParseSDGRefs(raw string) []int {
	ids := make([]int, 0)
	for _, ref := range SplitTags(raw) {
		id, ok := ParseSDGRef(ref)
		if !ok {
			continue
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func ParseSDGRef(ref string) (int, bool) {
	digits := firstInteger.FindString(ref)
	if digits == "" {
		return 0, false
	}
	id, err := strconv.Atoi(digits)
	if err != nil || !ValidSDG(id) {
		return 0, false
	}
	return id, true
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func placeholderDescription(title string) string {
	return fmt.Sprintf("Career path as a %s.", title)
}

func sourceOf(opts []Option) string {
	c := &Catalog{source: "reader"}
	for _, opt := range opts {
		opt(c)
	}
	return c.source
}
