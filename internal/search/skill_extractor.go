package search

import (
	"strings"

	"skill-match/internal/domain/skill"
)

// SkillExtractor finds vocabulary labels mentioned in free text.
type SkillExtractor struct {
	vocabulary []string
	lowered    []string
	exact      map[string]struct{}
	tokenizer  Tokenizer
}

func NewSkillExtractor(vocabulary []string, tokenizer Tokenizer) *SkillExtractor {
	if tokenizer == nil {
		tokenizer = WordTokenizer{}
	}

	e := &SkillExtractor{
		vocabulary: make([]string, 0, len(vocabulary)),
		lowered:    make([]string, 0, len(vocabulary)),
		exact:      make(map[string]struct{}, len(vocabulary)),
		tokenizer:  tokenizer,
	}
	for _, s := range vocabulary {
		if s == "" {
			continue
		}
		if _, dup := e.exact[s]; dup {
			continue
		}
		e.vocabulary = append(e.vocabulary, s)
		e.lowered = append(e.lowered, strings.ToLower(s))
		e.exact[s] = struct{}{}
	}
	return e
}

func NewDefaultSkillExtractor() *SkillExtractor {
	return NewSkillExtractor(skill.Vocabulary(), WordTokenizer{})
}

// Extract returns the vocabulary labels present in input, deduplicated, in
// first-seen order. Substring hits (case-insensitive, vocabulary order) come
// first, followed by exact token hits not already found.
func (e *SkillExtractor) Extract(input string) []string {
	out := make([]string, 0)
	if e == nil || input == "" {
		return out
	}

	seen := make(map[string]struct{}, len(e.vocabulary))
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	lower := strings.ToLower(input)
	for i, s := range e.vocabulary {
		if strings.Contains(lower, e.lowered[i]) {
			add(s)
		}
	}

	for _, tok := range e.tokenizer.Tokenize(input) {
		if _, ok := e.exact[tok]; ok {
			add(tok)
		}
	}

	return out
}
