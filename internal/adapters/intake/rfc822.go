package intake

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/jobsift/jobsift/internal/core"
)

// ParseRFC822 reads a raw RFC 822 message and shapes it like a message
// fetched from the mail source: headers lifted out, the MIME tree walked
// and each part's content re-encoded as URL-safe base64.
func ParseRFC822(r io.Reader) (*core.RawMessage, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	raw := &core.RawMessage{
		ID: strings.Trim(msg.Header.Get("Message-Id"), "<>"),
	}
	for key, values := range msg.Header {
		for _, value := range values {
			raw.Headers = append(raw.Headers, core.Header{Name: key, Value: value})
		}
	}

	raw.Payload = parseEntity(
		msg.Header.Get("Content-Type"),
		msg.Header.Get("Content-Transfer-Encoding"),
		msg.Body,
	)

	return raw, nil
}

// parseEntity converts one MIME entity into a body part, recursing into
// multipart bodies
func parseEntity(contentType, encoding string, body io.Reader) *core.BodyPart {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Messages without a Content-Type are plain text per RFC 2045
		return leafPart("text/plain", encoding, body)
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		return leafPart(mediaType, encoding, body)
	}

	boundary, ok := params["boundary"]
	if !ok {
		return leafPart(mediaType, encoding, body)
	}

	part := &core.BodyPart{MimeType: mediaType}
	mr := multipart.NewReader(body, boundary)
	for {
		child, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep whatever parts parsed cleanly
			break
		}

		part.Parts = append(part.Parts, parseEntity(
			child.Header.Get("Content-Type"),
			child.Header.Get("Content-Transfer-Encoding"),
			child,
		))
	}

	return part
}

// leafPart reads a non-multipart body and stores it the way the mail
// source delivers part data
func leafPart(mimeType, encoding string, body io.Reader) *core.BodyPart {
	data, err := io.ReadAll(decodeTransfer(encoding, body))
	if err != nil {
		data = nil
	}

	return &core.BodyPart{
		MimeType: mimeType,
		Data:     base64.RawURLEncoding.EncodeToString(data),
	}
}

// decodeTransfer undoes a content transfer encoding. The multipart
// reader already unwraps quoted-printable parts on its own, so that
// case only fires for single-part messages.
func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}
