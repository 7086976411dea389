package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// Analyzer wraps the prose tagging pipeline behind a small API the
// extractor can depend on. Constructing one forces the model data to
// load, so a broken installation surfaces at startup instead of on the
// first message.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer and runs a warmup parse.
func NewAnalyzer(logger *zap.Logger) (*Analyzer, error) {
	if _, err := prose.NewDocument("warmup",
		prose.WithExtraction(false),
		prose.WithSegmentation(false)); err != nil {
		return nil, fmt.Errorf("failed to initialize language model: %w", err)
	}
	if logger != nil {
		logger.Info("Language model initialized")
	}
	return &Analyzer{logger: logger}, nil
}

// Token is a single tagged token. Tags are Penn Treebank.
type Token struct {
	Text string
	Tag  string
}

// Lower returns the lowercased token text.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// IsProperNoun reports an NNP or NNPS tag.
func (t Token) IsProperNoun() bool {
	return strings.HasPrefix(t.Tag, "NNP")
}

// IsNoun reports any NN* tag.
func (t Token) IsNoun() bool {
	return strings.HasPrefix(t.Tag, "NN")
}

// IsAdjective reports any JJ* tag.
func (t Token) IsAdjective() bool {
	return strings.HasPrefix(t.Tag, "JJ")
}

// IsCapitalized reports whether the token starts with an upper-case rune.
func (t Token) IsCapitalized() bool {
	for _, r := range t.Text {
		return unicode.IsUpper(r)
	}
	return false
}

// IsProperLike treats capitalized common nouns and adjectives as proper
// nouns. Statistical taggers are unreliable on headline-style subject
// lines ("Lucid Software - Application Received"), where brand names
// often come back as plain nouns or adjectives.
func (t Token) IsProperLike() bool {
	if t.IsProperNoun() {
		return true
	}
	return t.IsCapitalized() && (t.IsNoun() || t.IsAdjective())
}

// IsYear reports a four-digit number.
func (t Token) IsYear() bool {
	if len(t.Text) != 4 {
		return false
	}
	for _, r := range t.Text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Doc is a parsed token stream.
type Doc struct {
	tokens []Token
}

// Parse tags the given text. Empty input yields an empty doc without
// touching the model.
func (a *Analyzer) Parse(text string) (*Doc, error) {
	if strings.TrimSpace(text) == "" {
		return &Doc{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to parse text: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return &Doc{tokens: tokens}, nil
}

// Tokens returns the tagged tokens in order.
func (d *Doc) Tokens() []Token {
	return d.tokens
}

// Len returns the token count.
func (d *Doc) Len() int {
	return len(d.tokens)
}

// orgStopwords end an organization run. Display names like
// "Google Talent Acquisition" should chunk as just the company.
var orgStopwords = map[string]bool{
	"team":          true,
	"talent":        true,
	"acquisition":   true,
	"recruiting":    true,
	"careers":       true,
	"jobs":          true,
	"hiring":        true,
	"hr":            true,
	"noreply":       true,
	"notification":  true,
	"notifications": true,
}

// OrgChunks returns candidate organization names: maximal runs of
// proper-noun-like tokens, cut short at department words.
func (d *Doc) OrgChunks() []string {
	var chunks []string
	var run []string

	flush := func() {
		if len(run) > 0 {
			chunks = append(chunks, strings.Join(run, " "))
			run = nil
		}
	}

	for _, tok := range d.tokens {
		if tok.IsProperLike() && !orgStopwords[tok.Lower()] {
			run = append(run, tok.Text)
			continue
		}
		flush()
	}
	flush()

	return chunks
}

// nounChunkTags are the tags allowed inside a noun chunk.
var nounChunkTags = map[string]bool{
	"DT": true, "PRP$": true,
	"JJ": true, "JJR": true, "JJS": true,
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

// NounChunks returns flat noun phrases: runs of determiner, adjective and
// noun tokens that contain at least one noun.
func (d *Doc) NounChunks() []string {
	var chunks []string
	var run []Token

	flush := func() {
		if len(run) == 0 {
			return
		}
		hasNoun := false
		words := make([]string, 0, len(run))
		for _, tok := range run {
			if tok.IsNoun() {
				hasNoun = true
			}
			words = append(words, tok.Text)
		}
		if hasNoun {
			chunks = append(chunks, strings.Join(words, " "))
		}
		run = nil
	}

	for _, tok := range d.tokens {
		if nounChunkTags[tok.Tag] {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return chunks
}
