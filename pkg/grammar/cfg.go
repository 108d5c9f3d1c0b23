/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cfg.go
Description: Zero-reversible CFG export for the SLG Learner. Converts the
substitution graph's congruence classes into a context-free grammar: unit rules
for single-token members, binary split rules for every split point of longer
members, and the corpus sentences as the start set.
*/

package grammar

import (
	"sort"
	"strings"

	"github.com/kleascm/slg-learner/pkg/classes"
	"github.com/kleascm/slg-learner/pkg/interfaces"
)

// SplitRule is a binary rule body: the class rewrites to the classes of
// the two halves of a member split
type SplitRule struct {
	Left  string `json:"left"`  // Class ID of the prefix
	Right string `json:"right"` // Class ID of the suffix
}

// CFG is the induced context-free grammar in the classic four-tuple form
type CFG struct {
	Alphabet     []string               `json:"alphabet"`      // Distinct substring literals
	NonTerminals []string               `json:"non_terminals"` // Class IDs
	Starts       []string               `json:"starts"`        // The corpus sentences
	UnitRules    map[string][]string    `json:"unit_rules"`    // Class -> terminal tokens
	SplitRules   map[string][]SplitRule `json:"split_rules"`   // Class -> binary bodies
}

// buildCFG maps each class member onto production rules. Single-token
// members yield unit rules; longer members yield one binary rule per
// split point, rewriting each half to its own class. Splits whose halves
// were filtered out by the length policy are skipped: they have no class
// to rewrite to.
func buildCFG(sentences []interfaces.Sentence, set *interfaces.ContextSet, partition *classes.Partition) *CFG {
	cfg := &CFG{
		UnitRules:  make(map[string][]string),
		SplitRules: make(map[string][]SplitRule),
	}

	for _, class := range partition.Classes {
		cfg.NonTerminals = append(cfg.NonTerminals, class.ID)

		unitSeen := make(map[string]struct{})
		splitSeen := make(map[SplitRule]struct{})
		for _, member := range class.Members {
			cfg.Alphabet = append(cfg.Alphabet, member)

			entry := set.Entries[member]
			if entry == nil {
				continue
			}
			if len(entry.Tokens) == 1 {
				if _, dup := unitSeen[member]; !dup {
					unitSeen[member] = struct{}{}
					cfg.UnitRules[class.ID] = append(cfg.UnitRules[class.ID], member)
				}
				continue
			}
			for split := 1; split < len(entry.Tokens); split++ {
				prefix := strings.Join(entry.Tokens[:split], " ")
				suffix := strings.Join(entry.Tokens[split:], " ")
				rule := SplitRule{
					Left:  partition.ClassOf(prefix),
					Right: partition.ClassOf(suffix),
				}
				if rule.Left == "" || rule.Right == "" {
					continue
				}
				if _, dup := splitSeen[rule]; dup {
					continue
				}
				splitSeen[rule] = struct{}{}
				cfg.SplitRules[class.ID] = append(cfg.SplitRules[class.ID], rule)
			}
		}

		sort.Strings(cfg.UnitRules[class.ID])
		rules := cfg.SplitRules[class.ID]
		sort.Slice(rules, func(a, b int) bool {
			if rules[a].Left != rules[b].Left {
				return rules[a].Left < rules[b].Left
			}
			return rules[a].Right < rules[b].Right
		})
	}
	sort.Strings(cfg.Alphabet)

	startSeen := make(map[string]struct{})
	for _, sentence := range sentences {
		text := sentence.Text()
		if _, dup := startSeen[text]; dup {
			continue
		}
		startSeen[text] = struct{}{}
		cfg.Starts = append(cfg.Starts, text)
	}
	sort.Strings(cfg.Starts)

	return cfg
}
