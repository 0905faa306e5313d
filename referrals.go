package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListReferrals = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/referrals"}
	endpointGetReferral   = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/referrals/:referral"}
)

// ReferralsService reads the referral forms attached to an
// opportunity.
type ReferralsService struct {
	client *Client
}

// Referral is a completed referral form.
type Referral struct {
	ID             string      `json:"id"`
	Type           string      `json:"type,omitempty"`
	Text           string      `json:"text,omitempty"`
	Instructions   string      `json:"instructions,omitempty"`
	Fields         []FormField `json:"fields,omitempty"`
	BaseTemplateID string      `json:"baseTemplateId,omitempty"`
	User           string      `json:"user,omitempty"`
	Referrer       string      `json:"referrer,omitempty"`
	Stage          string      `json:"stage,omitempty"`
	CreatedAt      Timestamp   `json:"createdAt,omitempty"`
	CompletedAt    Timestamp   `json:"completedAt,omitempty"`
}

// List retrieves a page of referrals for an opportunity.
func (s *ReferralsService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Referral], error) {
	var out ListResponse[Referral]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListReferrals, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single referral.
func (s *ReferralsService) Get(ctx context.Context, opportunityID, referralID string, reqOpts ...RequestOption) (*Referral, error) {
	var out Response[Referral]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "referral": referralID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetReferral, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
