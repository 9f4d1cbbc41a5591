package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"fileshare-api/config"
)

var ErrMissingOpenID = errors.New("portal userinfo is missing the subject id")

// Identity is the authenticated-user record the portal hands back after a
// successful redirect flow. OpenID is the stable correlation key; the rest
// is display data the portal may or may not share.
type Identity struct {
	OpenID      string
	Name        *string
	Email       *string
	LoginMethod *string
}

type Client struct {
	conf        *oauth2.Config
	provider    string
	userInfoURL string
}

func New(cfg config.OAuth) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		provider:    cfg.Provider,
		userInfoURL: cfg.UserInfoURL,
	}
}

// Exchange trades the redirect code for a portal token and resolves it into
// an Identity via the userinfo endpoint.
func (c *Client) Exchange(ctx context.Context, code string) (*Identity, error) {
	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var info struct {
		Sub   string  `json:"sub"`
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Sub == "" {
		return nil, ErrMissingOpenID
	}

	method := c.provider

	return &Identity{
		OpenID:      info.Sub,
		Name:        info.Name,
		Email:       info.Email,
		LoginMethod: &method,
	}, nil
}
