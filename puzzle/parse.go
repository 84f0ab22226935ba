package puzzle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/pathsearch"
)

// Option configures parsing.
type Option func(*Options)

// Options holds parsing parameters.
type Options struct {
	// Alphabet, if non-empty, restricts the admissible codes.
	Alphabet grid.Alphabet
}

// DefaultOptions validates against grid.DefaultAlphabet.
func DefaultOptions() Options {
	return Options{Alphabet: grid.DefaultAlphabet}
}

// WithAlphabet replaces the admissible alphabet. An empty alphabet
// disables the check and case normalization.
func WithAlphabet(a grid.Alphabet) Option {
	return func(o *Options) {
		o.Alphabet = a
	}
}

// codes normalizes raw with grid.ParseCodes when an alphabet is in force.
// Without one, codes are only trimmed and their case is kept, so "a" and
// "A" stay distinct.
func (o Options) codes(raw []string) []grid.Code {
	if len(o.Alphabet) > 0 {
		return grid.ParseCodes(raw)
	}

	return grid.TrimCodes(raw)
}

// Load reads and parses the puzzle file at path.
func Load(path string, opts ...Option) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("read puzzle: %w", err)
	}
	p, err := Parse(data, opts...)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path

	return p, nil
}

// LoadAll loads every path, collecting all failures instead of stopping at
// the first. Successfully parsed puzzles are returned even when err != nil.
func LoadAll(paths []string, opts ...Option) ([]Puzzle, error) {
	var (
		out  = make([]Puzzle, 0, len(paths))
		errs error
	)
	for _, path := range paths {
		p, err := Load(path, opts...)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, p)
	}

	return out, errs
}

// Parse decodes a YAML puzzle document and validates it.
// The returned error combines every problem found; use multierr.Errors to
// list them and errors.Is to match grid, pathsearch or package sentinels.
func Parse(data []byte, opts ...Option) (Puzzle, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Puzzle{}, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		if errors.Is(err, ErrMalformed) {
			return Puzzle{}, err
		}

		return Puzzle{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	p, err := build(doc, o)
	if err != nil {
		return Puzzle{}, err
	}
	p.ID = doc.ID
	if p.ID == "" {
		p.ID = uuid.NewSHA1(uuid.NameSpaceOID, data).String()
	}

	return p, nil
}

// build validates doc and converts it to grid values.
func build(doc document, o Options) (Puzzle, error) {
	var errs error

	if doc.Buffer < 0 {
		errs = multierr.Append(errs, fmt.Errorf("buffer: %w: got %d", pathsearch.ErrInvalidBufferSize, doc.Buffer))
	}

	cells := make([][]grid.Code, len(doc.Matrix))
	for r, row := range doc.Matrix {
		cells[r] = o.codes(row)
		for c, code := range cells[r] {
			errs = multierr.Append(errs, checkCode(o.Alphabet, code, fmt.Sprintf("matrix[%d][%d]", r, c)))
		}
	}
	m, err := grid.NewMatrix(cells)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("matrix: %w", err))
	}

	if len(doc.Targets) == 0 {
		errs = multierr.Append(errs, ErrNoTargets)
	}
	targets := make([]grid.TargetSequence, 0, len(doc.Targets))
	for i, row := range doc.Targets {
		codes := o.codes(row)
		for j, code := range codes {
			errs = multierr.Append(errs, checkCode(o.Alphabet, code, fmt.Sprintf("targets[%d][%d]", i, j)))
		}
		t, err := grid.NewTargetSequence(codes)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("targets[%d]: %w", i, err))
			continue
		}
		targets = append(targets, t)
	}

	if errs != nil {
		return Puzzle{}, errs
	}

	return Puzzle{
		Name:       doc.Name,
		Matrix:     m,
		Targets:    targets,
		BufferSize: doc.Buffer,
	}, nil
}

// checkCode reports a code outside a non-empty alphabet, with a hint.
func checkCode(a grid.Alphabet, c grid.Code, where string) error {
	if len(a) == 0 || a.Contains(c) {
		return nil
	}
	if s, ok := Suggest(a, c); ok {
		return fmt.Errorf("%s: %w: %q (did you mean %q?)", where, ErrUnknownCode, c, s)
	}

	return fmt.Errorf("%s: %w: %q", where, ErrUnknownCode, c)
}

// Suggest returns the alphabet code closest to c by edit distance, if it is
// within one edit. Ties go to the earlier alphabet entry.
func Suggest(a grid.Alphabet, c grid.Code) (grid.Code, bool) {
	var (
		best     grid.Code
		bestDist = -1
	)
	for _, x := range a {
		d := levenshtein.ComputeDistance(string(c), string(x))
		if bestDist < 0 || d < bestDist {
			best, bestDist = x, d
		}
	}
	if bestDist < 0 || bestDist > 1 {
		return "", false
	}

	return best, true
}
