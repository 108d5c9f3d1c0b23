/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Corpus format inference for the SLG Learner. Inspects raw corpus text
and suggests the tokenization granularity and sentence segmentation that best fit
it, so runs can be started with --granularity auto.
*/

package inference

import (
	"strings"
	"unicode"
)

// CorpusFormat is the inferred tokenization configuration for a corpus
type CorpusFormat struct {
	Granularity  string  `json:"granularity"`  // "word" or "char"
	Segmentation string  `json:"segmentation"` // "line" or "sentence"
	Confidence   float64 `json:"confidence"`   // 0.0-1.0
}

// InferenceEngine defines the interface for corpus format inference
type InferenceEngine interface {
	InferFormat(sample string) *CorpusFormat
}

// TextInferenceEngine infers the format from simple lexical statistics
type TextInferenceEngine struct{}

// NewTextInferenceEngine creates a text inference engine
func NewTextInferenceEngine() *TextInferenceEngine {
	return &TextInferenceEngine{}
}

// InferFormat inspects a corpus sample. Lines of short, space-free
// symbol strings indicate a toy grammar (character granularity, one
// sentence per line); prose with periods and multi-word lines indicates
// word granularity with period segmentation.
func (e *TextInferenceEngine) InferFormat(sample string) *CorpusFormat {
	lines := strings.Split(sample, "\n")

	var nonEmpty, spaceless, short, withPeriod int
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if !strings.ContainsFunc(trimmed, unicode.IsSpace) {
			spaceless++
		}
		if len([]rune(trimmed)) <= 16 {
			short++
		}
		if strings.Contains(trimmed, ".") {
			withPeriod++
		}
	}

	if nonEmpty == 0 {
		return &CorpusFormat{Granularity: "word", Segmentation: "sentence", Confidence: 0}
	}

	spacelessRatio := float64(spaceless) / float64(nonEmpty)
	shortRatio := float64(short) / float64(nonEmpty)
	periodRatio := float64(withPeriod) / float64(nonEmpty)

	// Toy grammars: nearly every line is a short token string with no
	// internal whitespace
	if spacelessRatio > 0.8 && shortRatio > 0.8 {
		return &CorpusFormat{
			Granularity:  "char",
			Segmentation: "line",
			Confidence:   (spacelessRatio + shortRatio) / 2,
		}
	}

	// Prose: periods delimit sentences
	if periodRatio > 0.3 {
		return &CorpusFormat{
			Granularity:  "word",
			Segmentation: "sentence",
			Confidence:   periodRatio,
		}
	}

	// Multi-word lines without periods: word tokens, line sentences
	return &CorpusFormat{
		Granularity:  "word",
		Segmentation: "line",
		Confidence:   1 - spacelessRatio,
	}
}
