package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns is the exact set of columns an experience source must provide.
var RequiredColumns = []string{
	"name",
	"tags",
	"min_budget",
	"max_budget",
	"duration_hours",
	"suitable_for",
	"description",
}

// Experience is one bookable Dubai experience. Entries are loaded once at
// startup and never mutated afterwards.
type Experience struct {
	Name          string   `json:"name"`
	Tags          []string `json:"tags"`
	MinBudget     int      `json:"min_budget"`
	MaxBudget     int      `json:"max_budget"`
	DurationHours float64  `json:"duration_hours"`
	SuitableFor   []string `json:"suitable_for"`
	Description   string   `json:"description"`
}

// Catalog is the immutable, process-wide experience table. It is shared
// read-only by every session, so no locking is needed.
type Catalog struct {
	entries []Experience
}

func New(entries []Experience) *Catalog {
	copied := make([]Experience, len(entries))
	copy(copied, entries)
	return &Catalog{entries: copied}
}

func (c *Catalog) Entries() []Experience {
	return c.entries
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// SchemaError reports every required column missing from a catalog source.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog schema violation: missing columns: %s", strings.Join(e.Missing, ", "))
}

// NormalizeSet lower-cases and trims values, dropping empties and duplicates
// while preserving first-seen order.
func NormalizeSet(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// SplitList splits a comma-delimited cell into a normalized set.
func SplitList(cell string) []string {
	return NormalizeSet(strings.Split(cell, ","))
}

// LoadCSV reads the experience table from a CSV file. A missing required
// column is a startup-fatal schema violation naming every absent column.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog file %s is empty", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	entries := make([]Experience, 0, len(records)-1)
	seenNames := make(map[string]bool)
	for rowNum, row := range records[1:] {
		entry, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", rowNum+2, err)
		}
		key := strings.ToLower(entry.Name)
		if seenNames[key] {
			return nil, fmt.Errorf("catalog row %d: duplicate experience name %q", rowNum+2, entry.Name)
		}
		seenNames[key] = true
		entries = append(entries, entry)
	}

	return New(entries), nil
}

func parseRow(row []string, columns map[string]int) (Experience, error) {
	cell := func(name string) string {
		return strings.TrimSpace(row[columns[name]])
	}

	name := cell("name")
	if name == "" {
		return Experience{}, fmt.Errorf("empty experience name")
	}

	minBudget, err := strconv.Atoi(cell("min_budget"))
	if err != nil {
		return Experience{}, fmt.Errorf("invalid min_budget: %w", err)
	}
	maxBudget, err := strconv.Atoi(cell("max_budget"))
	if err != nil {
		return Experience{}, fmt.Errorf("invalid max_budget: %w", err)
	}
	if minBudget > maxBudget {
		return Experience{}, fmt.Errorf("min_budget %d exceeds max_budget %d", minBudget, maxBudget)
	}

	durationHours, err := strconv.ParseFloat(cell("duration_hours"), 64)
	if err != nil {
		return Experience{}, fmt.Errorf("invalid duration_hours: %w", err)
	}
	if durationHours < 0 {
		return Experience{}, fmt.Errorf("negative duration_hours %v", durationHours)
	}

	return Experience{
		Name:          name,
		Tags:          SplitList(cell("tags")),
		MinBudget:     minBudget,
		MaxBudget:     maxBudget,
		DurationHours: durationHours,
		SuitableFor:   SplitList(cell("suitable_for")),
		Description:   cell("description"),
	}, nil
}
