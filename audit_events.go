package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var endpointListAuditEvents = transport.Endpoint{Method: http.MethodGet, Path: "/audit/events"}

// AuditEventsService reads the account's audit trail.
type AuditEventsService struct {
	client *Client
}

// AuditEvent records one configuration or access change.
type AuditEvent struct {
	ID        string          `json:"id"`
	CreatedAt Timestamp       `json:"createdAt,omitempty"`
	Type      string          `json:"type,omitempty"`
	User      *AuditEventUser `json:"user,omitempty"`
	Target    *AuditTarget    `json:"target,omitempty"`
	Meta      map[string]any  `json:"meta,omitempty"`
}

// AuditEventUser identifies who performed an audited action.
type AuditEventUser struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// AuditTarget identifies what an audited action acted on.
type AuditTarget struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
}

// AuditEventListOptions filters and paginates the audit trail.
type AuditEventListOptions struct {
	Limit          int
	Offset         string
	Type           string
	CreatedAtStart *Timestamp
	CreatedAtEnd   *Timestamp
}

func (o *AuditEventListOptions) query() transport.Query {
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
	if o.Type != "" {
		q["type"] = o.Type
	}
	addTimeRange(q, "created_at_start", o.CreatedAtStart)
	addTimeRange(q, "created_at_end", o.CreatedAtEnd)
	return q
}

// List retrieves a page of audit events.
func (s *AuditEventsService) List(ctx context.Context, opts *AuditEventListOptions, reqOpts ...RequestOption) (*ListResponse[AuditEvent], error) {
	var out ListResponse[AuditEvent]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListAuditEvents, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
