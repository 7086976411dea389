package gmailapi

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/jobsift/jobsift/internal/core"
)

// gmailUser is the special user id the API resolves to the account that
// owns the OAuth token.
const gmailUser = "me"

// Client reads messages from a Gmail mailbox over the Gmail API.
type Client struct {
	svc        *gmail.Service
	maxResults int64
	logger     *zap.Logger
}

// NewClient creates a new Gmail client over an authenticated HTTP client
func NewClient(httpClient *http.Client, maxResults int64, logger *zap.Logger) (*Client, error) {
	svc, err := gmail.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:        svc,
		maxResults: maxResults,
		logger:     logger,
	}, nil
}

// Search returns references to messages matching the Gmail query
func (c *Client) Search(ctx context.Context, query string) ([]core.MessageRef, error) {
	resp, err := c.svc.Users.Messages.List(gmailUser).
		Q(query).
		MaxResults(c.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	refs := make([]core.MessageRef, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		refs = append(refs, core.MessageRef{
			ID:       msg.Id,
			ThreadID: msg.ThreadId,
		})
	}

	c.logger.Debug("Searched mailbox",
		zap.Int("matches", len(refs)),
		zap.Int64("max_results", c.maxResults))

	return refs, nil
}

// Fetch retrieves the full message for an id
func (c *Client) Fetch(ctx context.Context, id string) (*core.RawMessage, error) {
	msg, err := c.svc.Users.Messages.Get(gmailUser, id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message %s: %w", id, err)
	}

	return convertMessage(msg), nil
}
