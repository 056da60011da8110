// Package client is a small HTTP client for the Notehub API, used by the
// command-line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Note mirrors the API's note representation.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for the API at baseURL. token may be empty for
// anonymous queries and signup/signin calls.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SignUp(ctx context.Context, username, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/signup", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// SignIn authenticates with a username or email.
func (c *Client) SignIn(ctx context.Context, login, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": login, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/signin", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// User mirrors the API's account representation.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Me returns the account behind the client's session token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Notes(ctx context.Context) ([]Note, error) {
	var result []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Note(ctx context.Context, id string) (*Note, error) {
	note := &Note{}
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id, nil, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) NewNote(ctx context.Context, content string) (*Note, error) {
	note := &Note{}
	if err := c.do(ctx, http.MethodPost, "/api/notes", map[string]string{"content": content}, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id, content string) (*Note, error) {
	note := &Note{}
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+id, map[string]string{"content": content}, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
