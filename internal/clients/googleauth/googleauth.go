// Package googleauth exchanges service-account credentials for Google OAuth2
// access tokens and caches them per scope.
package googleauth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

const (
	defaultTokenURI = "https://oauth2.googleapis.com/token"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	assertionLifetime = time.Hour
	// Tokens are evicted ahead of their real expiry so a cached token is
	// never handed out with only seconds left on it.
	expirySafetyMargin = time.Minute
)

// credentialsFile is the subset of the service-account JSON blob we need.
type credentialsFile struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// TokenSource mints and caches OAuth2 access tokens for a single service
// account. It is safe for concurrent use.
type TokenSource struct {
	clientEmail string
	privateKey  *rsa.PrivateKey
	tokenURI    string
	httpClient  *http.Client
	tokens      *cache.Cache
	now         func() time.Time
}

// New parses a service-account JSON credential blob and returns a token
// source for it.
func New(credentialsJSON string, httpClient *http.Client) (*TokenSource, error) {
	var creds credentialsFile
	if err := json.Unmarshal([]byte(credentialsJSON), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	if creds.ClientEmail == "" || creds.PrivateKey == "" {
		return nil, fmt.Errorf("service account credentials missing client_email or private_key")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(creds.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account private key: %w", err)
	}

	tokenURI := creds.TokenURI
	if tokenURI == "" {
		tokenURI = defaultTokenURI
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &TokenSource{
		clientEmail: creds.ClientEmail,
		privateKey:  key,
		tokenURI:    tokenURI,
		httpClient:  httpClient,
		tokens:      cache.New(cache.NoExpiration, 5*time.Minute),
		now:         time.Now,
	}, nil
}

// AccessToken returns a bearer token valid for the given scope, minting a new
// one through the jwt-bearer grant when the cache has no live entry.
func (ts *TokenSource) AccessToken(ctx context.Context, scope string) (string, error) {
	if token, found := ts.tokens.Get(scope); found {
		return token.(string), nil
	}

	assertion, err := ts.signAssertion(scope)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to exchange service account assertion: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty access token")
	}

	ttl := time.Duration(tokenResp.ExpiresIn)*time.Second - expirySafetyMargin
	if ttl > 0 {
		ts.tokens.Set(scope, tokenResp.AccessToken, ttl)
	}
	return tokenResp.AccessToken, nil
}

func (ts *TokenSource) signAssertion(scope string) (string, error) {
	now := ts.now()
	claims := jwt.MapClaims{
		"iss":   ts.clientEmail,
		"scope": scope,
		"aud":   ts.tokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign service account assertion: %w", err)
	}
	return assertion, nil
}
