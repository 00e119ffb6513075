// Package bucket merges workload lists generated per fine-grained
// (cache benefit, prefetch benefit) level into coarse Low/Medium/High buckets.
package bucket

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Mapping maps a fine numeric level to a coarse label.
type Mapping map[string]string

// Presets are the level tables used for the 2-core and 4-core studies.
var Presets = map[string]Mapping{
	"2-core": {"0": "L", "1": "L", "2": "M", "3": "H", "4": "H"},
	"4-core": {"0": "L", "2": "L", "4": "M", "6": "H", "8": "H"},
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileName is the workload list name for one (cache, prefetch) level pair.
func FileName(cb, pb string) string {
	return fmt.Sprintf("%s-cb.%s-pb", cb, pb)
}

// Step appends one fine file to one coarse file.
type Step struct {
	Source string
	Dest   string
}

// Plan lists every (cb, pb) level pair of m with its coarse destination,
// ordered by fine level so repeated runs append in the same order.
func Plan(m Mapping) []Step {
	levels := make([]string, 0, len(m))
	for level := range m {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	steps := make([]Step, 0, len(levels)*len(levels))
	for _, cb := range levels {
		for _, pb := range levels {
			steps = append(steps, Step{Source: FileName(cb, pb), Dest: FileName(m[cb], m[pb])})
		}
	}
	return steps
}

// Result counts what Coarsen did.
type Result struct {
	Appended int
	Skipped  int
	Bytes    int64
}

// Coarsen appends every planned fine file under fineDir to its coarse file
// under coarseDir, creating coarseDir if needed. Missing fine files are
// skipped with a warning.
func Coarsen(fineDir, coarseDir string, m Mapping) (Result, error) {
	var res Result
	if len(m) == 0 {
		return res, fmt.Errorf("empty level mapping")
	}
	if filepath.Clean(fineDir) == filepath.Clean(coarseDir) {
		return res, fmt.Errorf("fine and coarse directories must differ, both are %s", fineDir)
	}
	if err := os.MkdirAll(coarseDir, 0o755); err != nil {
		return res, fmt.Errorf("creating coarse directory: %w", err)
	}
	for _, step := range Plan(m) {
		n, err := appendFile(filepath.Join(fineDir, step.Source), filepath.Join(coarseDir, step.Dest))
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Warnf("skipping missing fine bucket %s", step.Source)
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("appending %s to %s: %w", step.Source, step.Dest, err)
		}
		res.Appended++
		res.Bytes += n
	}
	return res, nil
}

// ErrSameFile reports an append whose source and destination are one file.
var ErrSameFile = errors.New("input file is output file")

func appendFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, err
	}
	// Copying a file onto its own tail never reaches EOF.
	if same, err := sameFile(in, out); err != nil || same {
		_ = out.Close()
		if err == nil {
			err = ErrSameFile
		}
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func sameFile(a, b *os.File) (bool, error) {
	ai, err := a.Stat()
	if err != nil {
		return false, err
	}
	bi, err := b.Stat()
	if err != nil {
		return false, err
	}
	return os.SameFile(ai, bi), nil
}

type mappingFile struct {
	Levels Mapping `yaml:"levels"`
}

// LoadMapping reads a YAML file of the form "levels: {"0": L, ...}".
// Uses strict parsing: unrecognized keys are rejected.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level mapping: %w", err)
	}
	var mf mappingFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&mf); err != nil {
		return nil, fmt.Errorf("parsing level mapping: %w", err)
	}
	if len(mf.Levels) == 0 {
		return nil, fmt.Errorf("level mapping %s defines no levels", path)
	}
	for level, label := range mf.Levels {
		if label == "" {
			return nil, fmt.Errorf("level %q has an empty label", level)
		}
	}
	return mf.Levels, nil
}
