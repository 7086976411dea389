package mimetext

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/jobsift/jobsift/internal/core"
)

// BodyLimit caps the decoded body length. Classification only ever needs
// the opening of a message, and unbounded marketing HTML is common.
const BodyLimit = 2000

// Decoder is the stateless pipeline form of Decode.
type Decoder struct{}

// Decode walks a payload tree and returns its normalized text body.
func (Decoder) Decode(payload *core.BodyPart) string {
	return Decode(payload)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Decode walks a message's MIME tree and returns the normalized text
// body: newlines collapsed to spaces, trimmed, capped at BodyLimit
// characters and lowercased. Plain-text parts are preferred; HTML parts
// are used as a fallback with their tags stripped. Decode is best effort
// and returns the empty string when nothing usable is found.
func Decode(payload *core.BodyPart) string {
	if payload == nil {
		return ""
	}

	text := extractText(payload)
	return Normalize(text)
}

// Normalize applies the canonical body cleanup to already-extracted text.
func Normalize(text string) string {
	cleaned := strings.ReplaceAll(text, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\r", " ")
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > BodyLimit {
		cleaned = string(runes[:BodyLimit])
	}

	return strings.ToLower(cleaned)
}

// extractText finds the first text/plain part in a depth-first walk,
// falling back to the first text/html part stripped of tags.
func extractText(payload *core.BodyPart) string {
	if plain := findPart(payload, "text/plain"); plain != "" {
		return plain
	}
	if html := findPart(payload, "text/html"); html != "" {
		return StripHTML(html)
	}
	return ""
}

func findPart(part *core.BodyPart, mimeType string) string {
	if part == nil {
		return ""
	}
	if strings.EqualFold(part.MimeType, mimeType) && part.Data != "" {
		if text, ok := decodeData(part.Data); ok {
			return text
		}
	}
	for _, child := range part.Parts {
		if text := findPart(child, mimeType); text != "" {
			return text
		}
	}
	return ""
}

// decodeData decodes URL-safe base64 payload data. Gmail pads its
// payloads but forwarded and hand-built messages often do not, so both
// variants are accepted.
func decodeData(data string) (string, bool) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return "", false
	}
	if decoded, err := base64.URLEncoding.DecodeString(trimmed); err == nil {
		return string(decoded), true
	}
	if decoded, err := base64.RawURLEncoding.DecodeString(trimmed); err == nil {
		return string(decoded), true
	}
	return "", false
}

// StripHTML removes anything between angle brackets. Crude next to a real
// HTML parser, but job mail bodies only need to be searchable, not pretty.
func StripHTML(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}
