package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var endpointListTags = transport.Endpoint{Method: http.MethodGet, Path: "/tags"}

// TagsService reads the tags in use across the account.
type TagsService struct {
	client *Client
}

// Tag is a label applied to opportunities, with its usage count.
type Tag struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// List retrieves a page of tags.
func (s *TagsService) List(ctx context.Context, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Tag], error) {
	var out ListResponse[Tag]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListTags, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
