package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a, err := NewAnalyzer(nil)
	require.NoError(t, err)

	doc, err := a.Parse("Software Engineer Intern at Stripe")
	require.NoError(t, err)
	require.Equal(t, 5, doc.Len())

	texts := make([]string, 0, doc.Len())
	for _, tok := range doc.Tokens() {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"Software", "Engineer", "Intern", "at", "Stripe"}, texts)
}

func TestParseEmpty(t *testing.T) {
	a, err := NewAnalyzer(nil)
	require.NoError(t, err)

	doc, err := a.Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestTokenHelpers(t *testing.T) {
	tests := []struct {
		name       string
		token      Token
		properLike bool
	}{
		{name: "tagged proper noun", token: Token{Text: "Stripe", Tag: "NNP"}, properLike: true},
		{name: "capitalized common noun", token: Token{Text: "Software", Tag: "NN"}, properLike: true},
		{name: "capitalized adjective", token: Token{Text: "Lucid", Tag: "JJ"}, properLike: true},
		{name: "lowercase noun", token: Token{Text: "software", Tag: "NN"}, properLike: false},
		{name: "capitalized verb", token: Token{Text: "Received", Tag: "VBN"}, properLike: false},
		{name: "determiner", token: Token{Text: "The", Tag: "DT"}, properLike: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.properLike, tt.token.IsProperLike())
		})
	}
}

func TestTokenIsYear(t *testing.T) {
	assert.True(t, Token{Text: "2026"}.IsYear())
	assert.True(t, Token{Text: "1999"}.IsYear())
	assert.False(t, Token{Text: "202"}.IsYear())
	assert.False(t, Token{Text: "20x6"}.IsYear())
	assert.False(t, Token{Text: "summer"}.IsYear())
}

func TestOrgChunks(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   []string
	}{
		{
			name: "run stops at department word",
			tokens: []Token{
				{Text: "Google", Tag: "NNP"},
				{Text: "Talent", Tag: "NNP"},
				{Text: "Acquisition", Tag: "NNP"},
			},
			want: []string{"Google"},
		},
		{
			name: "capitalized brand pair",
			tokens: []Token{
				{Text: "Lucid", Tag: "JJ"},
				{Text: "Software", Tag: "NN"},
			},
			want: []string{"Lucid Software"},
		},
		{
			name: "runs split by lowercase words",
			tokens: []Token{
				{Text: "Acme", Tag: "NNP"},
				{Text: "and", Tag: "CC"},
				{Text: "Initech", Tag: "NNP"},
			},
			want: []string{"Acme", "Initech"},
		},
		{
			name:   "no proper tokens",
			tokens: []Token{{Text: "hello", Tag: "UH"}, {Text: "there", Tag: "RB"}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Doc{tokens: tt.tokens}
			assert.Equal(t, tt.want, doc.OrgChunks())
		})
	}
}

func TestNounChunks(t *testing.T) {
	doc := &Doc{tokens: []Token{
		{Text: "we", Tag: "PRP"},
		{Text: "reviewed", Tag: "VBD"},
		{Text: "the", Tag: "DT"},
		{Text: "software", Tag: "NN"},
		{Text: "engineer", Tag: "NN"},
		{Text: "position", Tag: "NN"},
		{Text: "today", Tag: "RB"},
	}}

	assert.Equal(t, []string{"the software engineer position"}, doc.NounChunks())
}

func TestNounChunksRequireNoun(t *testing.T) {
	doc := &Doc{tokens: []Token{
		{Text: "the", Tag: "DT"},
		{Text: "very", Tag: "RB"},
		{Text: "big", Tag: "JJ"},
	}}

	// "the" and "big" alone never form a chunk without a noun.
	assert.Empty(t, doc.NounChunks())
}
