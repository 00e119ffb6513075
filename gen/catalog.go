package gen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrMalformedRecord is matched by every catalog record error.
var ErrMalformedRecord = errors.New("malformed catalog record")

// MalformedRecordError identifies one catalog line that could not be loaded.
type MalformedRecordError struct {
	Source string
	Line   int
	Record string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: %s %q: %s", e.Source, e.Line, ErrMalformedRecord, e.Record, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// Entry is one benchmark with its cost in each budget dimension.
type Entry struct {
	ID    string
	CostA int
	CostB int
}

// Catalog is an ordered, read-only collection of entries with unique IDs.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog validates entries and builds a Catalog from them.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if reason := c.admit(e); reason != "" {
			return nil, &MalformedRecordError{Source: "entries", Line: i + 1, Record: e.ID, Reason: reason}
		}
	}
	return c, nil
}

// admit appends e and returns "" or explains why e was rejected.
func (c *Catalog) admit(e Entry) string {
	switch {
	case e.ID == "":
		return "empty id"
	case strings.Contains(e.ID, Delimiter) || strings.ContainsAny(e.ID, " \t"):
		return fmt.Sprintf("id must not contain %q or whitespace", Delimiter)
	case e.CostA < 0 || e.CostB < 0:
		return "costs must be non-negative"
	}
	if prev, dup := c.index[e.ID]; dup {
		return fmt.Sprintf("duplicate id (first defined as entry %d)", prev+1)
	}
	c.index[e.ID] = len(c.entries)
	c.entries = append(c.entries, e)
	return ""
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in load order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Lookup returns the entry with the given ID.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// LoadCatalog reads a "<id> <costA> <costB>" catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseCatalog(f, path)
}

// ParseCatalog parses one "<id> <costA> <costB>" record per line. Blank lines
// are skipped. Every malformed record is reported, not just the first.
func ParseCatalog(r io.Reader, source string) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}
	var result *multierror.Error

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		record := strings.TrimSpace(scanner.Text())
		if record == "" {
			continue
		}
		entry, reason := parseCostedRecord(record)
		if reason == "" {
			reason = c.admit(entry)
		}
		if reason != "" {
			result = multierror.Append(result, &MalformedRecordError{Source: source, Line: line, Record: record, Reason: reason})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", source, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseCostedRecord(record string) (Entry, string) {
	fields := strings.Fields(record)
	if len(fields) != 3 {
		return Entry{}, fmt.Sprintf("want 3 fields <id> <costA> <costB>, got %d", len(fields))
	}
	costA, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Sprintf("costA %q is not an integer", fields[1])
	}
	costB, err := strconv.Atoi(fields[2])
	if err != nil {
		return Entry{}, fmt.Sprintf("costB %q is not an integer", fields[2])
	}
	return Entry{ID: fields[0], CostA: costA, CostB: costB}, ""
}

// LoadIDList reads a catalog of whitespace-separated benchmark IDs.
func LoadIDList(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening id list: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseIDList(f, path)
}

// ParseIDList builds a zero-cost catalog from whitespace-separated IDs, for
// the unconstrained variants.
func ParseIDList(r io.Reader, source string) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}
	var result *multierror.Error

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		for _, id := range strings.Fields(scanner.Text()) {
			if reason := c.admit(Entry{ID: id}); reason != "" {
				result = multierror.Append(result, &MalformedRecordError{Source: source, Line: line, Record: id, Reason: reason})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading id list %s: %w", source, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}
