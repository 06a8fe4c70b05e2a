// Package content holds the static exercise banks: word problem templates
// and spelling words. Both ship embedded as YAML and are checked against a
// JSON Schema plus semantic rules when loaded.
package content

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed wordproblems.yaml
var wordProblemsYAML []byte

//go:embed words.yaml
var wordsYAML []byte

// WordProblem is a word problem template: a prompt with its equation.
type WordProblem struct {
	ID     string `yaml:"id"`
	Text   string `yaml:"text"`
	A      int    `yaml:"a"`
	B      int    `yaml:"b"`
	Op     string `yaml:"op"`
	Result int    `yaml:"result"`
}

// Bank is a loaded, validated set of content.
type Bank struct {
	problems []WordProblem
	words    map[int][]string
}

type wordProblemFile struct {
	Problems []WordProblem `yaml:"problems"`
}

type wordFile struct {
	Words map[string][]string `yaml:"words"`
}

// Parse validates and decodes the two bank documents.
func Parse(problemsDoc, wordsDoc []byte) (*Bank, error) {
	if err := validateYAML(WordProblemBankSchema, problemsDoc); err != nil {
		return nil, fmt.Errorf("word problem bank: %w", err)
	}
	if err := validateYAML(WordBankSchema, wordsDoc); err != nil {
		return nil, fmt.Errorf("word bank: %w", err)
	}

	var pf wordProblemFile
	if err := yaml.Unmarshal(problemsDoc, &pf); err != nil {
		return nil, fmt.Errorf("decode word problems: %w", err)
	}
	seen := make(map[string]bool, len(pf.Problems))
	for _, p := range pf.Problems {
		if seen[p.ID] {
			return nil, fmt.Errorf("word problem %q: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if got := evaluate(p); got != p.Result {
			return nil, fmt.Errorf("word problem %q: %d %s %d is %d, not %d", p.ID, p.A, p.Op, p.B, got, p.Result)
		}
	}

	var wf wordFile
	if err := yaml.Unmarshal(wordsDoc, &wf); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	words := make(map[int][]string, len(wf.Words))
	for key, list := range wf.Words {
		length, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("word length %q: %w", key, err)
		}
		for _, w := range list {
			if len([]rune(w)) != length {
				return nil, fmt.Errorf("word %q listed under length %d", w, length)
			}
		}
		words[length] = list
	}

	return &Bank{problems: pf.Problems, words: words}, nil
}

func evaluate(p WordProblem) int {
	if p.Op == "-" {
		return p.A - p.B
	}
	return p.A + p.B
}

var loadEmbedded = sync.OnceValues(func() (*Bank, error) {
	return Parse(wordProblemsYAML, wordsYAML)
})

// Load returns the embedded bank, parsing it on first use.
func Load() (*Bank, error) {
	return loadEmbedded()
}

// MustLoad is Load for callers that treat a broken embedded bank as a
// build defect.
func MustLoad() *Bank {
	b, err := Load()
	if err != nil {
		panic(fmt.Sprintf("content: %v", err))
	}
	return b
}

// WordProblems returns a copy of the word problem templates.
func (b *Bank) WordProblems() []WordProblem {
	return slices.Clone(b.problems)
}

// Words returns a copy of the spelling words of the given length.
func (b *Bank) Words(length int) []string {
	return slices.Clone(b.words[length])
}

// WordLengths returns the available word lengths in ascending order.
func (b *Bank) WordLengths() []int {
	lengths := make([]int, 0, len(b.words))
	for l := range b.words {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)
	return lengths
}
