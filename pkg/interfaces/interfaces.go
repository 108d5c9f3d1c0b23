/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the SLG Learner. Defines the core interfaces
used across all packages to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Granularity controls how sentences are tokenized
type Granularity string

const (
	GranularityWord Granularity = "word"
	GranularityChar Granularity = "char"

	// GranularityAuto asks the CLI to infer word/char from the corpus
	// before a pipeline is constructed. It is not a valid pipeline value.
	GranularityAuto Granularity = "auto"
)

// Segmentation controls how raw text is split into sentences
type Segmentation string

const (
	SegmentationLine     Segmentation = "line"
	SegmentationSentence Segmentation = "sentence"
)

// Boundary markers embedded in context fragments so that contexts at
// sentence edges stay distinguishable from internal ones
const (
	BoundaryStart = "⟨s⟩"
	BoundaryEnd   = "⟨/s⟩"
)

// Sentence is an ordered sequence of tokens, immutable once loaded
type Sentence struct {
	Index  int      `json:"index"`  // Position within the corpus
	Tokens []string `json:"tokens"` // Words or characters per granularity
	Source string   `json:"source"` // File the sentence was loaded from
}

// Text returns the canonical space-joined form of the sentence
func (s Sentence) Text() string {
	return strings.Join(s.Tokens, " ")
}

// Len returns the sentence length in tokens
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Context is the (left, right) token sequence surrounding a substring
// occurrence within its sentence. Both fragments extend to the sentence
// boundary and carry the boundary markers, so Context is comparable and
// usable as a map key.
type Context struct {
	Left  string `json:"left"`  // BoundaryStart plus the tokens before the span
	Right string `json:"right"` // Tokens after the span plus BoundaryEnd
}

// NewContext builds a Context from the raw token fragments
func NewContext(left, right []string) Context {
	l := BoundaryStart
	if len(left) > 0 {
		l += " " + strings.Join(left, " ")
	}
	r := BoundaryEnd
	if len(right) > 0 {
		r = strings.Join(right, " ") + " " + r
	}
	return Context{Left: l, Right: r}
}

// String renders the context with a hole for the substring
func (c Context) String() string {
	return c.Left + " _ " + c.Right
}

// SubstringEntry records one distinct literal substring and every context
// it occurs in anywhere in the corpus
type SubstringEntry struct {
	Literal  string               `json:"literal"` // Canonical space-joined token form
	Tokens   []string             `json:"tokens"`
	Contexts map[Context]struct{} `json:"-"`
}

// ContextSet maps each distinct substring (by literal content) to the set
// of contexts in which it occurs anywhere in the corpus
type ContextSet struct {
	Entries map[string]*SubstringEntry
}

// NewContextSet creates an empty context set
func NewContextSet() *ContextSet {
	return &ContextSet{Entries: make(map[string]*SubstringEntry)}
}

// Add records one occurrence of a substring in the given context.
// Occurrences of the same literal content share one entry; duplicate
// contexts deduplicate by value.
func (cs *ContextSet) Add(tokens []string, ctx Context) {
	literal := strings.Join(tokens, " ")
	entry, ok := cs.Entries[literal]
	if !ok {
		entry = &SubstringEntry{
			Literal:  literal,
			Tokens:   append([]string(nil), tokens...),
			Contexts: make(map[Context]struct{}),
		}
		cs.Entries[literal] = entry
	}
	entry.Contexts[ctx] = struct{}{}
}

// Size returns the number of distinct substrings
func (cs *ContextSet) Size() int {
	return len(cs.Entries)
}

// LengthPolicy bounds the substring spans considered by extraction.
// MaxLength == 0 means unbounded (up to sentence length minus one);
// whole-sentence spans are always excluded.
type LengthPolicy struct {
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
}

// Validate checks the policy bounds
func (p LengthPolicy) Validate() error {
	if p.MinLength <= 0 {
		return WrapConfiguration("min-length must be positive")
	}
	if p.MaxLength < 0 {
		return WrapConfiguration("max-length must not be negative")
	}
	if p.MaxLength != 0 && p.MinLength > p.MaxLength {
		return WrapConfiguration("min-length must not exceed max-length")
	}
	return nil
}

// LearnerConfig represents the full configuration for one learning run
type LearnerConfig struct {
	InputPath    string       `json:"input_path"`
	OutputDir    string       `json:"output_dir"`
	Granularity  Granularity  `json:"granularity"`
	Segmentation Segmentation `json:"segmentation"`
	Lengths      LengthPolicy `json:"lengths"`
	Visualize    bool         `json:"visualize"` // Render the substitution graph
	Lite         bool         `json:"lite"`      // Skip browser-based rendering entirely
	PrintOnly    bool         `json:"print"`     // Reports to stdout instead of files
}

// Validate checks the configuration before the pipeline starts
func (c *LearnerConfig) Validate() error {
	if err := c.Lengths.Validate(); err != nil {
		return err
	}
	switch c.Granularity {
	case GranularityWord, GranularityChar:
	default:
		return WrapConfiguration("granularity must be word or char")
	}
	switch c.Segmentation {
	case SegmentationLine, SegmentationSentence:
	default:
		return WrapConfiguration("segment must be line or sentence")
	}
	if !c.PrintOnly && c.OutputDir == "" {
		return WrapConfiguration("output directory must not be empty")
	}
	return nil
}

// Sentinel errors for the learner's error taxonomy. Classify a failure
// with errors.Is; add detail by wrapping with fmt.Errorf("...: %w", err).
var (
	// ErrInput indicates an unreadable corpus path or a corpus that
	// tokenizes to zero sentences
	ErrInput = errors.New("input error")

	// ErrConfiguration indicates invalid run configuration
	ErrConfiguration = errors.New("configuration error")
)

// WrapInput attaches a detail message to ErrInput
func WrapInput(msg string) error {
	return &taggedError{tag: ErrInput, msg: msg}
}

// WrapConfiguration attaches a detail message to ErrConfiguration
func WrapConfiguration(msg string) error {
	return &taggedError{tag: ErrConfiguration, msg: msg}
}

type taggedError struct {
	tag error
	msg string
}

func (e *taggedError) Error() string { return e.tag.Error() + ": " + e.msg }
func (e *taggedError) Unwrap() error { return e.tag }

// CorpusLoader loads and tokenizes sentences from an input path
type CorpusLoader interface {
	Load(path string) ([]Sentence, error)
}

// ContextExtractor enumerates substrings and their contexts
type ContextExtractor interface {
	Extract(sentences []Sentence) (*ContextSet, error)
}

// Renderer consumes the final graph and classes as an optional side
// effect. The core pipeline has no dependency on any graphics toolkit.
type Renderer interface {
	Render(ctx context.Context, outputDir string) (paths []string, err error)
}

// RunInfo identifies one pipeline run for report stamping
type RunInfo struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
}
