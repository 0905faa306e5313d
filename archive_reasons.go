package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListArchiveReasons = transport.Endpoint{Method: http.MethodGet, Path: "/archive_reasons"}
	endpointGetArchiveReason   = transport.Endpoint{Method: http.MethodGet, Path: "/archive_reasons/:reason"}
)

// ArchiveReasonsService reads the reasons an opportunity can be
// archived under.
type ArchiveReasonsService struct {
	client *Client
}

// ArchiveReason is one configured archive reason.
type ArchiveReason struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
}

// List retrieves a page of archive reasons.
func (s *ArchiveReasonsService) List(ctx context.Context, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[ArchiveReason], error) {
	var out ListResponse[ArchiveReason]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListArchiveReasons, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single archive reason by id.
func (s *ArchiveReasonsService) Get(ctx context.Context, reasonID string, reqOpts ...RequestOption) (*ArchiveReason, error) {
	var out Response[ArchiveReason]
	call := transport.Call{
		Params:  transport.Params{"reason": reasonID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetArchiveReason, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
