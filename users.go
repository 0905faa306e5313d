package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListUsers      = transport.Endpoint{Method: http.MethodGet, Path: "/users"}
	endpointGetUser        = transport.Endpoint{Method: http.MethodGet, Path: "/users/:user"}
	endpointCreateUser     = transport.Endpoint{Method: http.MethodPost, Path: "/users"}
	endpointUpdateUser     = transport.Endpoint{Method: http.MethodPut, Path: "/users/:user"}
	endpointDeactivateUser = transport.Endpoint{Method: http.MethodPost, Path: "/users/:user/deactivate"}
	endpointReactivateUser = transport.Endpoint{Method: http.MethodPost, Path: "/users/:user/reactivate"}
)

// UsersService manages the account's users (recruiters, hiring
// managers, interviewers).
type UsersService struct {
	client *Client
}

// User is one account member.
type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name,omitempty"`
	Username            string     `json:"username,omitempty"`
	Email               string     `json:"email,omitempty"`
	AccessRole          string     `json:"accessRole,omitempty"`
	Photo               string     `json:"photo,omitempty"`
	CreatedAt           Timestamp  `json:"createdAt,omitempty"`
	DeactivatedAt       *Timestamp `json:"deactivatedAt,omitempty"`
	ExternalDirectoryID string     `json:"externalDirectoryId,omitempty"`
	LinkedContactIDs    []string   `json:"linkedContactIds,omitempty"`
}

// UserCreate is the payload for inviting or updating a user.
type UserCreate struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	AccessRole          string `json:"accessRole,omitempty"`
	ExternalDirectoryID string `json:"externalDirectoryId,omitempty"`
}

// UserListOptions filters and paginates user listings.
type UserListOptions struct {
	Limit              int
	Offset             string
	Email              string
	AccessRole         string
	IncludeDeactivated *bool
}

func (o *UserListOptions) query() transport.Query {
	if o == nil {
		return nil
	}
	q := transport.Query{}
	if o.Limit > 0 {
		q["limit"] = o.Limit
	}
	if o.Offset != "" {
		q["offset"] = o.Offset
	}
	if o.Email != "" {
		q["email"] = o.Email
	}
	if o.AccessRole != "" {
		q["accessRole"] = o.AccessRole
	}
	if o.IncludeDeactivated != nil {
		q["includeDeactivated"] = *o.IncludeDeactivated
	}
	return q
}

// List retrieves a page of users.
func (s *UsersService) List(ctx context.Context, opts *UserListOptions, reqOpts ...RequestOption) (*ListResponse[User], error) {
	var out ListResponse[User]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListUsers, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single user by id.
func (s *UsersService) Get(ctx context.Context, userID string, reqOpts ...RequestOption) (*User, error) {
	var out Response[User]
	call := transport.Call{
		Params:  transport.Params{"user": userID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetUser, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create invites a new user to the account.
func (s *UsersService) Create(ctx context.Context, create *UserCreate, reqOpts ...RequestOption) (*User, error) {
	var out Response[User]
	call := transport.Call{Body: create, Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointCreateUser, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update replaces the mutable fields of a user.
func (s *UsersService) Update(ctx context.Context, userID string, update *UserCreate, reqOpts ...RequestOption) (*User, error) {
	var out Response[User]
	call := transport.Call{
		Params:  transport.Params{"user": userID},
		Body:    update,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointUpdateUser, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Deactivate disables a user's access without deleting their history.
func (s *UsersService) Deactivate(ctx context.Context, userID string, reqOpts ...RequestOption) (*User, error) {
	return s.toggleActivation(ctx, endpointDeactivateUser, userID, reqOpts)
}

// Reactivate restores a previously deactivated user.
func (s *UsersService) Reactivate(ctx context.Context, userID string, reqOpts ...RequestOption) (*User, error) {
	return s.toggleActivation(ctx, endpointReactivateUser, userID, reqOpts)
}

func (s *UsersService) toggleActivation(ctx context.Context, endpoint transport.Endpoint, userID string, reqOpts []RequestOption) (*User, error) {
	var out Response[User]
	call := transport.Call{
		Params:  transport.Params{"user": userID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpoint, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
