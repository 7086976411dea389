package mimetext

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobsift/jobsift/internal/core"
)

func encode(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func plainPart(s string) *core.BodyPart {
	return &core.BodyPart{MimeType: "text/plain", Data: encode(s)}
}

func htmlPart(s string) *core.BodyPart {
	return &core.BodyPart{MimeType: "text/html", Data: encode(s)}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload *core.BodyPart
		want    string
	}{
		{
			name:    "simple plain text",
			payload: plainPart("Thank You for Applying"),
			want:    "thank you for applying",
		},
		{
			name:    "html only body has tags stripped",
			payload: htmlPart("<p>Hello <b>World</b></p>"),
			want:    "hello world",
		},
		{
			name: "plain preferred over html regardless of order",
			payload: &core.BodyPart{
				MimeType: "multipart/alternative",
				Parts: []*core.BodyPart{
					htmlPart("<h1>Fancy</h1>"),
					plainPart("Simple"),
				},
			},
			want: "simple",
		},
		{
			name: "first plain part wins",
			payload: &core.BodyPart{
				MimeType: "multipart/mixed",
				Parts: []*core.BodyPart{
					plainPart("first"),
					plainPart("second"),
				},
			},
			want: "first",
		},
		{
			name: "plain part found in nested multipart",
			payload: &core.BodyPart{
				MimeType: "multipart/mixed",
				Parts: []*core.BodyPart{
					{
						MimeType: "multipart/alternative",
						Parts: []*core.BodyPart{
							plainPart("buried text"),
						},
					},
				},
			},
			want: "buried text",
		},
		{
			name: "html fallback when plain data is corrupt",
			payload: &core.BodyPart{
				MimeType: "multipart/alternative",
				Parts: []*core.BodyPart{
					{MimeType: "text/plain", Data: "!!!not-base64!!!"},
					htmlPart("<div>fallback</div>"),
				},
			},
			want: "fallback",
		},
		{
			name:    "corrupt data with no fallback",
			payload: &core.BodyPart{MimeType: "text/plain", Data: "!!!not-base64!!!"},
			want:    "",
		},
		{
			name:    "newlines collapsed and trimmed",
			payload: plainPart("  Hi\nthere\r"),
			want:    "hi there",
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    "",
		},
		{
			name:    "empty part",
			payload: &core.BodyPart{MimeType: "text/plain"},
			want:    "",
		},
		{
			name:    "unrelated mime type",
			payload: &core.BodyPart{MimeType: "image/png", Data: encode("binary")},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.payload))
		})
	}
}

func TestDecodeUnpaddedBase64(t *testing.T) {
	raw := base64.RawURLEncoding.EncodeToString([]byte("No Padding"))
	payload := &core.BodyPart{MimeType: "text/plain", Data: raw}
	assert.Equal(t, "no padding", Decode(payload))
}

func TestDecodeTruncation(t *testing.T) {
	long := strings.Repeat("A", BodyLimit+500)
	got := Decode(plainPart(long))
	assert.Len(t, got, BodyLimit)
	assert.Equal(t, strings.Repeat("a", BodyLimit), got)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello World", StripHTML("<p>Hello <b>World</b></p>"))
	assert.Equal(t, "plain already", StripHTML("plain already"))
	assert.Equal(t, "", StripHTML("<br/>"))
}
