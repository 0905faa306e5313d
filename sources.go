package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var endpointListSources = transport.Endpoint{Method: http.MethodGet, Path: "/sources"}

// SourcesService reads the candidate sources in use across the
// account.
type SourcesService struct {
	client *Client
}

// Source records where candidates come from, with its usage count.
type Source struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// List retrieves a page of sources.
func (s *SourcesService) List(ctx context.Context, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Source], error) {
	var out ListResponse[Source]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListSources, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
