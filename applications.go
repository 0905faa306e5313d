package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListApplications = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/applications"}
	endpointGetApplication   = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/applications/:application"}
)

// ApplicationsService reads the applications attached to an
// opportunity. Applications are created by candidates or sourcing, so
// the API exposes them read-only.
type ApplicationsService struct {
	client *Client
}

// Application records how a candidate entered consideration for a
// posting.
type Application struct {
	ID                   string      `json:"id"`
	Type                 string      `json:"type,omitempty"`
	CandidateID          string      `json:"candidateId,omitempty"`
	OpportunityID        string      `json:"opportunityId,omitempty"`
	Posting              string      `json:"posting,omitempty"`
	PostingHiringManager string      `json:"postingHiringManager,omitempty"`
	PostingOwner         string      `json:"postingOwner,omitempty"`
	Name                 string      `json:"name,omitempty"`
	Company              string      `json:"company,omitempty"`
	Phone                *Phone      `json:"phone,omitempty"`
	Email                string      `json:"email,omitempty"`
	Links                []string    `json:"links,omitempty"`
	Comments             string      `json:"comments,omitempty"`
	User                 string      `json:"user,omitempty"`
	CustomQuestions      []FormField `json:"customQuestions,omitempty"`
	CreatedAt            Timestamp   `json:"createdAt,omitempty"`
	Archived             *Archived   `json:"archived,omitempty"`
	RequisitionForHire   *RequisitionForHire `json:"requisitionForHire,omitempty"`
}

// RequisitionForHire links an application to the requisition it was
// hired against.
type RequisitionForHire struct {
	ID              string `json:"id"`
	RequisitionCode string `json:"requisitionCode,omitempty"`
	HiringManagerOnHire string `json:"hiringManagerOnHire,omitempty"`
}

// ListOptions paginates a nested collection listing.
type ListOptions struct {
	Limit  int
	Offset string
}

func (o *ListOptions) query() transport.Query {
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
	return q
}

// List retrieves a page of applications for an opportunity.
func (s *ApplicationsService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Application], error) {
	var out ListResponse[Application]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListApplications, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single application on an opportunity.
func (s *ApplicationsService) Get(ctx context.Context, opportunityID, applicationID string, reqOpts ...RequestOption) (*Application, error) {
	var out Response[Application]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "application": applicationID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetApplication, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
