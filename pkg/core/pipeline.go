/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline.go
Description: Core pipeline for the SLG Learner. Owns all intermediate state for one
learning run and executes the batch stages strictly in order: load corpus, extract
contexts, build the substitution graph, resolve congruence classes, induce the
grammar. No shared mutable state survives across runs.
*/

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/slg-learner/pkg/classes"
	"github.com/kleascm/slg-learner/pkg/contexts"
	"github.com/kleascm/slg-learner/pkg/corpus"
	"github.com/kleascm/slg-learner/pkg/grammar"
	"github.com/kleascm/slg-learner/pkg/graph"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Pipeline executes one complete learning run. All structures it builds
// are owned exclusively by the pipeline instance for the duration of the
// run and discarded afterwards.
type Pipeline struct {
	config *interfaces.LearnerConfig
	logger *logrus.Logger
	run    interfaces.RunInfo

	// Stage components
	loader    interfaces.CorpusLoader
	extractor interfaces.ContextExtractor
	builder   *graph.Builder
	resolver  *classes.Resolver
	inducer   *grammar.Inducer

	// State built during Run, immutable after
	sentences  []interfaces.Sentence
	contextSet *interfaces.ContextSet
	graph      *graph.Graph
	partition  *classes.Partition
	grammar    *grammar.Grammar
}

// NewPipeline creates a pipeline for the given configuration.
// The configuration is validated up front; an invalid length policy or
// tokenization setting aborts before any corpus work begins.
func NewPipeline(config *interfaces.LearnerConfig, logger *logrus.Logger) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Pipeline{
		config: config,
		logger: logger,
		run: interfaces.RunInfo{
			RunID:     uuid.New().String(),
			StartedAt: time.Now(),
		},
		loader:    corpus.NewLoader(config.Granularity, config.Segmentation, logger),
		extractor: contexts.NewExtractor(config.Lengths, logger),
		builder:   graph.NewBuilder(logger),
		resolver:  classes.NewResolver(logger),
		inducer:   grammar.NewInducer(logger),
	}, nil
}

// NewPipelineFromSentences creates a pipeline that skips corpus loading
// and runs on pre-tokenized sentences (used by the demo corpora)
func NewPipelineFromSentences(config *interfaces.LearnerConfig, sentences []interfaces.Sentence, logger *logrus.Logger) (*Pipeline, error) {
	p, err := NewPipeline(config, logger)
	if err != nil {
		return nil, err
	}
	p.sentences = sentences
	return p, nil
}

// Run executes the pipeline stages in order and returns the result.
// Each stage fully consumes the previous stage's output before the next
// one starts; a failure at any stage aborts the entire run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	// Stage 1: load corpus (skipped when sentences were injected)
	if p.sentences == nil {
		sentences, err := p.loader.Load(p.config.InputPath)
		if err != nil {
			return nil, err
		}
		p.sentences = sentences
	}
	if len(p.sentences) == 0 {
		return nil, fmt.Errorf("%w: no sentences to learn from", interfaces.ErrInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: extract contexts
	set, err := p.extractor.Extract(p.sentences)
	if err != nil {
		return nil, err
	}
	p.contextSet = set
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: build substitution graph
	p.graph = p.builder.Build(p.contextSet, p.run)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: resolve congruence classes
	p.partition = p.resolver.Resolve(p.graph)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: induce grammar
	p.grammar = p.inducer.Induce(p.sentences, p.contextSet, p.partition)

	result := p.buildResult(time.Since(start))
	if result.Degenerate {
		p.logger.WithFields(logrus.Fields{
			"run_id": p.run.RunID,
			"nodes":  p.graph.NodeCount(),
		}).Warning("Degenerate result: substitution graph has no edges, grammar holds only unproductive singleton classes")
	}

	return result, nil
}

// buildResult assembles the run summary
func (p *Pipeline) buildResult(elapsed time.Duration) *Result {
	distinct := make(map[interfaces.Context]struct{})
	for _, entry := range p.contextSet.Entries {
		for ctx := range entry.Contexts {
			distinct[ctx] = struct{}{}
		}
	}

	productive := 0
	for _, fragment := range p.grammar.Fragments {
		if fragment.Productive {
			productive++
		}
	}

	return &Result{
		RunID:             p.run.RunID,
		StartedAt:         p.run.StartedAt,
		Duration:          elapsed,
		SentenceCount:     len(p.sentences),
		Substrings:        p.contextSet.Size(),
		DistinctContexts:  len(distinct),
		Edges:             p.graph.EdgeCount(),
		Classes:           len(p.partition.Classes),
		ProductiveClasses: productive,
		Degenerate:        p.graph.EdgeCount() == 0,
		Sentences:         p.sentences,
		Graph:             p.graph,
		Partition:         p.partition,
		Grammar:           p.grammar,
	}
}
