// Package client wraps the comment API's HTTP surface. Responses normalize
// into a value-or-error envelope: any non-2xx status comes back as an
// *APIError carrying the server's status code and message, so callers can
// leave local state untouched on failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/threadline-app/backend/pkg/commenttree"
)

// APIError is the error half of the envelope: the HTTP status and plain
// message the server answered with.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NewComment carries the fields of a comment to be posted. ParentID nil
// posts a top-level comment.
type NewComment struct {
	Text     string `json:"text"`
	AuthorID string `json:"authorId"`
	Author   string `json:"author"`
	ParentID *uint  `json:"parentId"`
}

// LikeResult is the like toggle's response: the action the server took and
// the authoritative like count.
type LikeResult struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Likes   int    `json:"likes"`
}

// Notification is the client-side view of a notification
type Notification struct {
	ID          uint      `json:"id"`
	RecipientID string    `json:"recipientId"`
	ActorID     string    `json:"actorId"`
	ActorName   string    `json:"actorName"`
	Type        string    `json:"type"`
	CommentID   uint      `json:"commentId"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Client talks to a comment API at a base URL
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080"
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient creates a Client using a caller-provided http.Client
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// ListComments fetches the full comment forest: top-level comments with
// replies nested up to three levels, newest first.
func (c *Client) ListComments(ctx context.Context) ([]*commenttree.Comment, error) {
	var forest []*commenttree.Comment
	if err := c.do(ctx, http.MethodGet, "/api/comments", nil, &forest); err != nil {
		return nil, err
	}
	return forest, nil
}

// PostComment creates a top-level comment or reply and returns the created
// comment as the server stored it
func (c *Client) PostComment(ctx context.Context, comment NewComment) (*commenttree.Comment, error) {
	if comment.Author == "" {
		comment.Author = "Anonymous"
	}
	var created commenttree.Comment
	if err := c.do(ctx, http.MethodPost, "/api/comments", comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// LikeComment toggles the user's like on a comment
func (c *Client) LikeComment(ctx context.Context, commentID uint, userID string) (*LikeResult, error) {
	body := map[string]string{"userId": userID}
	var result LikeResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/comments/%d/like", commentID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteComment deletes the user's own comment and its whole reply subtree
func (c *Client) DeleteComment(ctx context.Context, commentID uint, userID string) error {
	body := map[string]string{"userId": userID}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), body, nil)
}

// ListNotifications fetches the user's notifications, newest first
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]Notification, error) {
	var notifications []Notification
	query := url.Values{"userId": {userID}}
	path := "/api/notifications?" + query.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError turns a failed response into an *APIError, using the server's
// JSON message when it has one
func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Message string `json:"message"`
	}
	message := string(raw)
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
