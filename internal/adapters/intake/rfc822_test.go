package intake

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift/internal/mimetext"
)

func decodePart(t *testing.T, data string) string {
	t.Helper()
	decoded, err := base64.RawURLEncoding.DecodeString(data)
	require.NoError(t, err)
	return string(decoded)
}

func TestParseRFC822PlainText(t *testing.T) {
	raw := "From: careers@initech.com\r\n" +
		"To: me@example.com\r\n" +
		"Subject: Thank you for applying\r\n" +
		"Message-ID: <abc@initech.com>\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		"We received your application for Software Engineer.\r\n"

	msg, err := ParseRFC822(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "abc@initech.com", msg.ID)
	assert.Equal(t, "Thank you for applying", msg.HeaderValue("Subject"))
	assert.Equal(t, "careers@initech.com", msg.HeaderValue("From"))

	require.NotNil(t, msg.Payload)
	assert.Equal(t, "text/plain", msg.Payload.MimeType)
	assert.Equal(t,
		"We received your application for Software Engineer.\r\n",
		decodePart(t, msg.Payload.Data))
}

func TestParseRFC822Multipart(t *testing.T) {
	raw := "From: recruiting@hooli.com\r\n" +
		"Subject: Interview invitation\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=\"b1\"\r\n" +
		"\r\n" +
		"--b1\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		"We would like to schedule an interview.\r\n" +
		"--b1\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		"<p>We would like to schedule an interview.</p>\r\n" +
		"--b1--\r\n"

	msg, err := ParseRFC822(strings.NewReader(raw))
	require.NoError(t, err)

	require.NotNil(t, msg.Payload)
	assert.Equal(t, "multipart/alternative", msg.Payload.MimeType)
	require.Len(t, msg.Payload.Parts, 2)
	assert.Equal(t, "text/plain", msg.Payload.Parts[0].MimeType)
	assert.Equal(t, "text/html", msg.Payload.Parts[1].MimeType)
	assert.Equal(t,
		"We would like to schedule an interview.",
		decodePart(t, msg.Payload.Parts[0].Data))

	// The re-encoded tree feeds straight into the body decoder.
	assert.Equal(t, "we would like to schedule an interview.", mimetext.Decode(msg.Payload))
}

func TestParseRFC822Base64Body(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("Your coding assessment is ready."))
	raw := "From: noreply@codesignal.com\r\n" +
		"Subject: Complete your assessment\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"\r\n" +
		encoded + "\r\n"

	msg, err := ParseRFC822(strings.NewReader(raw))
	require.NoError(t, err)

	require.NotNil(t, msg.Payload)
	assert.Equal(t, "Your coding assessment is ready.", decodePart(t, msg.Payload.Data))
}

func TestParseRFC822QuotedPrintableBody(t *testing.T) {
	raw := "From: careers@initech.com\r\n" +
		"Subject: Application received\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"We=E2=80=99ve received your application.\r\n"

	msg, err := ParseRFC822(strings.NewReader(raw))
	require.NoError(t, err)

	require.NotNil(t, msg.Payload)
	assert.Equal(t,
		"We’ve received your application.\r\n",
		decodePart(t, msg.Payload.Data))
}

func TestParseRFC822NoContentType(t *testing.T) {
	raw := "From: careers@initech.com\r\n" +
		"Subject: Application received\r\n" +
		"\r\n" +
		"Thanks for applying.\r\n"

	msg, err := ParseRFC822(strings.NewReader(raw))
	require.NoError(t, err)

	require.NotNil(t, msg.Payload)
	assert.Equal(t, "text/plain", msg.Payload.MimeType)
	assert.Equal(t, "Thanks for applying.\r\n", decodePart(t, msg.Payload.Data))
}

func TestParseRFC822Malformed(t *testing.T) {
	_, err := ParseRFC822(strings.NewReader("this is not a mail message"))
	assert.Error(t, err)
}
