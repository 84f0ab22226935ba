package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/pathsearch"
)

var (
	// ErrUnknownCode indicates a code outside the configured alphabet.
	ErrUnknownCode = errors.New("puzzle: code not in alphabet")
	// ErrNoTargets indicates a puzzle without target sequences.
	ErrNoTargets = errors.New("puzzle: no target sequences")
	// ErrMalformed indicates YAML that does not have the puzzle layout.
	ErrMalformed = errors.New("puzzle: malformed document")
)

// Puzzle is a validated, ready-to-solve puzzle.
type Puzzle struct {
	// ID is taken from the file, or derived from its content when absent.
	ID string
	// Name is a free-form label; may be empty.
	Name string
	// Source is the file the puzzle was read from; empty for in-memory input.
	Source string

	Matrix  *grid.Matrix
	Targets []grid.TargetSequence

	// BufferSize is the buffer requested by the file; 0 means "caller decides".
	BufferSize int
}

// Label returns the most descriptive identifier available: Name, Source, then ID.
func (p Puzzle) Label() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Source != "":
		return p.Source
	default:
		return p.ID
	}
}

// Request turns p into a pathsearch.Request, using defaultBuffer when the
// puzzle does not set its own buffer size.
func (p Puzzle) Request(defaultBuffer int) pathsearch.Request {
	buffer := p.BufferSize
	if buffer == 0 {
		buffer = defaultBuffer
	}

	return pathsearch.Request{
		ID:         p.Label(),
		Matrix:     p.Matrix,
		Targets:    p.Targets,
		BufferSize: buffer,
	}
}

// document is the on-disk YAML layout.
type document struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Buffer  int       `yaml:"buffer"`
	Matrix  []codeRow `yaml:"matrix"`
	Targets []codeRow `yaml:"targets"`
}

// codeRow is one matrix row or target sequence. It accepts either a YAML
// sequence of scalars or a single whitespace-separated scalar. Raw scalar
// text is kept, so 55 stays "55" instead of becoming an integer.
type codeRow []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *codeRow) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = strings.Fields(node.Value)

		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: line %d: a code must be a scalar", ErrMalformed, child.Line)
			}
			out = append(out, child.Value)
		}
		*r = out

		return nil
	default:
		return fmt.Errorf("%w: line %d: expected a list of codes or a string", ErrMalformed, node.Line)
	}
}
