/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Corpus loading system for the SLG Learner. Reads plain-text and HTML
corpus files, segments them into sentences, and tokenizes them at word or character
granularity. Produces the immutable sentence list consumed by context extraction.
*/

package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// nonLetter matches everything that is not a letter, a period, or
// whitespace. Prose input is scrubbed with it before sentence splitting,
// the same normalization the learner applies to Gutenberg-style text.
var nonLetter = regexp.MustCompile(`[^a-zA-Z.\s]`)

// Loader implements interfaces.CorpusLoader
// Reads a single file or every regular file in a directory
type Loader struct {
	granularity  interfaces.Granularity
	segmentation interfaces.Segmentation
	logger       *logrus.Logger
}

// NewLoader creates a corpus loader for the given tokenization settings
func NewLoader(granularity interfaces.Granularity, segmentation interfaces.Segmentation, logger *logrus.Logger) *Loader {
	if logger == nil {
		logger = logrus.New()
	}
	return &Loader{
		granularity:  granularity,
		segmentation: segmentation,
		logger:       logger,
	}
}

// Load reads the corpus at path and returns its tokenized sentences.
// Returns an error wrapping interfaces.ErrInput when the path is
// unreadable or the corpus yields zero sentences.
func (l *Loader) Load(path string) ([]interfaces.Sentence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read corpus path %q: %v", interfaces.ErrInput, path, err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot list corpus directory %q: %v", interfaces.ErrInput, path, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(files)
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: corpus directory %q contains no files", interfaces.ErrInput, path)
		}
	} else {
		files = []string{path}
	}

	var sentences []interfaces.Sentence
	for _, file := range files {
		loaded, err := l.loadFile(file, len(sentences))
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, loaded...)
	}

	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: corpus at %q tokenizes to zero sentences", interfaces.ErrInput, path)
	}

	l.logger.WithFields(logrus.Fields{
		"files":     len(files),
		"sentences": len(sentences),
	}).Info("Corpus loaded")

	return sentences, nil
}

// loadFile reads one corpus file and tokenizes its sentences, assigning
// indices starting at base
func (l *Loader) loadFile(path string, base int) ([]interfaces.Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read corpus file %q: %v", interfaces.ErrInput, path, err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = extractHTMLText(data)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot parse HTML corpus file %q: %v", interfaces.ErrInput, path, err)
		}
	}

	var sentences []interfaces.Sentence
	for _, raw := range l.segment(text) {
		tokens := l.tokenize(raw)
		if len(tokens) == 0 {
			continue
		}
		sentences = append(sentences, interfaces.Sentence{
			Index:  base + len(sentences),
			Tokens: tokens,
			Source: path,
		})
	}
	return sentences, nil
}

// segment splits raw text into sentence strings per the configured mode
func (l *Loader) segment(text string) []string {
	switch l.segmentation {
	case interfaces.SegmentationLine:
		return strings.Split(text, "\n")
	default:
		// Prose mode: scrub everything but letters, periods, and
		// whitespace, then split on periods
		return strings.Split(nonLetter.ReplaceAllString(text, ""), ".")
	}
}

// tokenize breaks one sentence string into tokens per the configured
// granularity
func (l *Loader) tokenize(raw string) []string {
	switch l.granularity {
	case interfaces.GranularityChar:
		var tokens []string
		for _, r := range raw {
			if unicode.IsSpace(r) {
				continue
			}
			tokens = append(tokens, string(r))
		}
		return tokens
	default:
		return strings.Fields(raw)
	}
}

// extractHTMLText strips markup from an HTML document, keeping only the
// rendered text content
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text(), nil
	}
	return doc.Text(), nil
}
