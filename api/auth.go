package api

import (
	"context"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/session"
	"github.com/prashikshan/prashikshan-cli/status"
)

// LoginRequest carries the credentials for a login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account registration. Exactly one of the
// role profile blocks should match the chosen role.
type RegisterRequest struct {
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Password        string                 `json:"password"`
	Role            status.Role            `json:"role"`
	CollegeID       *string                `json:"college_id,omitempty"`
	Phone           string                 `json:"phone,omitempty"`
	University      string                 `json:"university,omitempty"`
	StudentProfile  *ProfileUpdate         `json:"student_profile,omitempty"`
	FacultyProfile  *ProfileUpdate         `json:"faculty_profile,omitempty"`
	IndustryProfile *IndustryProfileUpdate `json:"industry_profile,omitempty"`
}

// Login exchanges credentials for a token grant, stores it in the session,
// and loads the current user profile so the session is fully authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var tokens session.Tokens
	if err := c.post(ctx, "/api/v1/auth/login", LoginRequest{Email: email, Password: password}, &tokens); err != nil {
		return nil, err
	}
	if err := c.session.SetTokens(tokens); err != nil {
		return nil, fmt.Errorf("store tokens: %w", err)
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.session.SetUser(&session.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	return user, nil
}

// Register creates a new account. The account still needs to sign in; the
// API returns the created user, not a token grant.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.post(ctx, "/api/v1/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the local session. The API keeps no server-side session
// state for the client to tear down.
func (c *Client) Logout() error {
	return c.session.Clear()
}
