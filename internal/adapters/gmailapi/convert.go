package gmailapi

import (
	"google.golang.org/api/gmail/v1"

	"github.com/jobsift/jobsift/internal/core"
)

// convertMessage maps an API message onto the core representation. The
// part data stays in the URL-safe base64 the API delivers it in.
func convertMessage(msg *gmail.Message) *core.RawMessage {
	raw := &core.RawMessage{
		ID:           msg.Id,
		InternalDate: msg.InternalDate,
	}

	if msg.Payload == nil {
		return raw
	}

	raw.Headers = make([]core.Header, 0, len(msg.Payload.Headers))
	for _, h := range msg.Payload.Headers {
		raw.Headers = append(raw.Headers, core.Header{
			Name:  h.Name,
			Value: h.Value,
		})
	}
	raw.Payload = convertPart(msg.Payload)

	return raw
}

// convertPart copies one node of the MIME tree, recursing into its parts
func convertPart(part *gmail.MessagePart) *core.BodyPart {
	if part == nil {
		return nil
	}

	out := &core.BodyPart{
		MimeType: part.MimeType,
	}
	if part.Body != nil {
		out.Data = part.Body.Data
	}
	for _, child := range part.Parts {
		if converted := convertPart(child); converted != nil {
			out.Parts = append(out.Parts, converted)
		}
	}

	return out
}
