package backendsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core/user"
)

// OAuth providers the backend can redirect through.
const (
	ProviderGoogle  = "google"
	ProviderGithub  = "github"
	ProviderDiscord = "discord"
)

var ErrUnknownProvider = errors.New("unknown oauth provider")

var _ user.AuthAPI = (*Client)(nil)

// Register creates a new account via POST /register.
func (c *Client) Register(ctx context.Context, nu user.NewUser) (user.User, error) {
	data, err := json.Marshal(nu)
	if err != nil {
		return user.User{}, errors.Wrap(err, "encoding registration")
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/register", bytes.NewReader(data), "application/json")
	if err != nil {
		return user.User{}, err
	}
	var usr user.User
	if err := c.do(req, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// Login exchanges credentials for a bearer token via POST /token.
// The endpoint expects form-encoded credentials, not JSON.
func (c *Client) Login(ctx context.Context, creds user.Credentials) (string, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	req, err := c.newRequest(
		ctx, http.MethodPost, "/token",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded",
	)
	if err != nil {
		return "", err
	}
	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(req, &body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", errors.New("backend returned an empty token")
	}
	return body.AccessToken, nil
}

// Me fetches the authenticated user via GET /users/me.
func (c *Client) Me(ctx context.Context) (user.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/users/me", nil, "")
	if err != nil {
		return user.User{}, err
	}
	var usr user.User
	if err := c.do(req, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// OAuthURL returns the backend's authorize URL for the given provider; the
// provider ultimately redirects the browser to redirectURI with the token.
func (c *Client) OAuthURL(provider, redirectURI string) (string, error) {
	switch provider {
	case ProviderGoogle, ProviderGithub, ProviderDiscord:
	default:
		return "", ErrUnknownProvider
	}
	q := url.Values{}
	q.Set("redirect_uri", redirectURI)
	return c.url("/oauth/" + provider + "/authorize?" + q.Encode()), nil
}
