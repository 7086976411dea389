package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes lists every Google scope the service needs: mailbox reads,
// tracker sheet writes, and the account email for the user registry.
var Scopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/userinfo.email",
	"openid",
}

// ReadConfig parses an installed-app client secret file
func ReadConfig(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return cfg, nil
}

// LoadToken reads a cached OAuth token from disk
func LoadToken(tokenPath string) (*oauth2.Token, error) {
	f, err := os.Open(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}

	return token, nil
}

// SaveToken writes an OAuth token to disk, readable only by the owner
func SaveToken(tokenPath string, token *oauth2.Token) error {
	f, err := os.OpenFile(tokenPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return nil
}

// Authorize runs the interactive installed-app flow. It prints the
// authorization URL, reads the code back from in, and exchanges it for
// a token with offline access so refreshes work unattended.
func Authorize(ctx context.Context, cfg *oauth2.Config, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Open the following link in your browser, then paste the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}

// Client builds an HTTP client from the cached token. The underlying
// token source refreshes expired tokens on its own.
func Client(ctx context.Context, credentialsPath, tokenPath string) (*http.Client, error) {
	cfg, err := ReadConfig(credentialsPath)
	if err != nil {
		return nil, err
	}

	token, err := LoadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("no cached token, run jobsift-auth first: %w", err)
	}

	return cfg.Client(ctx, token), nil
}
