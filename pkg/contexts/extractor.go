/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: extractor.go
Description: Context extraction for the SLG Learner. Enumerates every contiguous
substring of every corpus sentence within the configured length bounds and records
its surrounding (left, right) context, producing the ContextSet consumed by the
substitution graph builder.
*/

package contexts

import (
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Extractor implements interfaces.ContextExtractor
// Enumeration is quadratic in per-sentence length and linear in corpus size
type Extractor struct {
	policy interfaces.LengthPolicy
	logger *logrus.Logger
}

// NewExtractor creates a context extractor for the given length policy.
// The policy must already be validated.
func NewExtractor(policy interfaces.LengthPolicy, logger *logrus.Logger) *Extractor {
	if logger == nil {
		logger = logrus.New()
	}
	return &Extractor{policy: policy, logger: logger}
}

// Extract enumerates all in-bounds spans of every sentence and records
// each span's literal content and surrounding context. The span equal to
// the whole sentence is excluded: it has no internal context. Sentences
// shorter than the minimum length contribute nothing.
func (e *Extractor) Extract(sentences []interfaces.Sentence) (*interfaces.ContextSet, error) {
	set := interfaces.NewContextSet()

	occurrences := 0
	for _, sentence := range sentences {
		n := sentence.Len()
		// Longest admissible span is one short of the full sentence
		maxLen := n - 1
		if e.policy.MaxLength != 0 && e.policy.MaxLength < maxLen {
			maxLen = e.policy.MaxLength
		}
		for start := 0; start < n; start++ {
			for length := e.policy.MinLength; length <= maxLen && start+length <= n; length++ {
				end := start + length
				ctx := interfaces.NewContext(sentence.Tokens[:start], sentence.Tokens[end:])
				set.Add(sentence.Tokens[start:end], ctx)
				occurrences++
			}
		}
	}

	e.logger.WithFields(logrus.Fields{
		"sentences":   len(sentences),
		"occurrences": occurrences,
		"substrings":  set.Size(),
	}).Info("Context extraction complete")

	return set, nil
}
