/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inducer.go
Description: Grammar induction for the SLG Learner. Consumes the congruence
classes and the corpus sentences to produce grammar fragments: one synthesized
nonterminal per class, with production alternatives derived from the context
patterns observed across the corpus for the class's members.
*/

package grammar

import (
	"sort"

	"github.com/kleascm/slg-learner/pkg/classes"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Production is one alternative rule body for a class's nonterminal: the
// class placeholder embedded in an observed context pattern
type Production struct {
	Left    string `json:"left"`
	ClassID string `json:"class_id"`
	Right   string `json:"right"`
}

// String renders the production body
func (p Production) String() string {
	return p.Left + " " + p.ClassID + " " + p.Right
}

// Fragment is the induced rule set for one congruence class. Classes with
// fewer than two distinct context observations are kept but flagged as
// insufficiently attested: a quality signal, not an error.
type Fragment struct {
	ClassID     string               `json:"class_id"`
	Members     []string             `json:"members"`
	Productions []Production         `json:"productions"`
	Contexts    []interfaces.Context `json:"contexts"`
	Productive  bool                 `json:"productive"`
}

// Grammar is the full induction result: every class's fragment plus the
// zero-reversible CFG derived from the substitution graph
type Grammar struct {
	Fragments []Fragment `json:"fragments"`
	CFG       *CFG       `json:"cfg"`
}

// ProductiveFragments returns only the fragments eligible for rule
// induction
func (g *Grammar) ProductiveFragments() []Fragment {
	var out []Fragment
	for _, f := range g.Fragments {
		if f.Productive {
			out = append(out, f)
		}
	}
	return out
}

// Inducer produces a Grammar from the resolved classes
type Inducer struct {
	logger *logrus.Logger
}

// NewInducer creates a grammar inducer
func NewInducer(logger *logrus.Logger) *Inducer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Inducer{logger: logger}
}

// Induce builds one fragment per congruence class and the CFG export.
// A class is productive when its members were observed in at least two
// distinct contexts across the corpus.
func (i *Inducer) Induce(sentences []interfaces.Sentence, set *interfaces.ContextSet, partition *classes.Partition) *Grammar {
	g := &Grammar{}

	productive := 0
	for _, class := range partition.Classes {
		fragment := Fragment{
			ClassID: class.ID,
			Members: class.Members,
		}

		distinct := make(map[interfaces.Context]struct{})
		for _, member := range class.Members {
			entry := set.Entries[member]
			if entry == nil {
				continue
			}
			for ctx := range entry.Contexts {
				distinct[ctx] = struct{}{}
			}
		}
		for ctx := range distinct {
			fragment.Contexts = append(fragment.Contexts, ctx)
		}
		sort.Slice(fragment.Contexts, func(a, b int) bool {
			if fragment.Contexts[a].Left != fragment.Contexts[b].Left {
				return fragment.Contexts[a].Left < fragment.Contexts[b].Left
			}
			return fragment.Contexts[a].Right < fragment.Contexts[b].Right
		})
		for _, ctx := range fragment.Contexts {
			fragment.Productions = append(fragment.Productions, Production{
				Left:    ctx.Left,
				ClassID: class.ID,
				Right:   ctx.Right,
			})
		}

		fragment.Productive = len(fragment.Contexts) >= 2
		if fragment.Productive {
			productive++
		}
		g.Fragments = append(g.Fragments, fragment)
	}

	g.CFG = buildCFG(sentences, set, partition)

	i.logger.WithFields(logrus.Fields{
		"classes":    len(g.Fragments),
		"productive": productive,
	}).Info("Grammar induced")

	return g
}
