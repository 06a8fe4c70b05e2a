package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedBankIsValid(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	problems := b.WordProblems()
	require.NotEmpty(t, problems)
	for _, p := range problems {
		assert.Equal(t, p.Result, evaluate(p), "problem %s", p.ID)
		assert.GreaterOrEqual(t, p.Result, 0, "problem %s", p.ID)
	}

	assert.Equal(t, []int{3, 4, 5, 6}, b.WordLengths())
	for _, l := range b.WordLengths() {
		for _, w := range b.Words(l) {
			assert.Len(t, w, l)
		}
	}
}

func TestWords_ReturnsCopy(t *testing.T) {
	b := MustLoad()
	words := b.Words(3)
	require.NotEmpty(t, words)
	words[0] = "zzz"
	assert.NotEqual(t, "zzz", b.Words(3)[0])
}

func TestWords_UnknownLength(t *testing.T) {
	assert.Empty(t, MustLoad().Words(42))
}

func TestParse_Rejects(t *testing.T) {
	validWords := []byte("words:\n  \"3\": [cat]\n")
	validProblems := []byte(`problems:
  - id: ok-1
    text: One plus one.
    a: 1
    b: 1
    op: "+"
    result: 2
`)

	tests := []struct {
		name     string
		problems string
		words    string
	}{
		{
			name: "wrong result",
			problems: `problems:
  - id: bad-1
    text: Two plus two.
    a: 2
    b: 2
    op: "+"
    result: 5
`,
		},
		{
			name: "unknown operator",
			problems: `problems:
  - id: bad-2
    text: Two times two.
    a: 2
    b: 2
    op: "*"
    result: 4
`,
		},
		{
			name: "missing field",
			problems: `problems:
  - id: bad-3
    a: 2
    b: 2
    op: "+"
    result: 4
`,
		},
		{
			name:  "word under wrong length",
			words: "words:\n  \"4\": [cat]\n",
		},
		{
			name:  "non-numeric length",
			words: "words:\n  three: [cat]\n",
		},
		{
			name:  "uppercase word",
			words: "words:\n  \"3\": [CAT]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := validProblems
			if tt.problems != "" {
				problems = []byte(tt.problems)
			}
			words := validWords
			if tt.words != "" {
				words = []byte(tt.words)
			}
			_, err := Parse(problems, words)
			assert.Error(t, err)
		})
	}

	_, err := Parse(validProblems, validWords)
	assert.NoError(t, err)
}
