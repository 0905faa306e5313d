package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListPanels  = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/panels"}
	endpointGetPanel    = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/panels/:panel"}
	endpointCreatePanel = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/panels"}
	endpointUpdatePanel = transport.Endpoint{Method: http.MethodPut, Path: "/opportunities/:opportunity/panels/:panel"}
	endpointDeletePanel = transport.Endpoint{Method: http.MethodDelete, Path: "/opportunities/:opportunity/panels/:panel"}
)

// PanelsService manages interview panels: groups of interviews
// scheduled together for one stage.
type PanelsService struct {
	client *Client
}

// Panel is a group of interviews for an opportunity.
type Panel struct {
	ID                string      `json:"id"`
	Applicant         string      `json:"applicant,omitempty"`
	Start             Timestamp   `json:"start,omitempty"`
	End               Timestamp   `json:"end,omitempty"`
	Timezone          string      `json:"timezone,omitempty"`
	FeedbackReminder  string      `json:"feedbackReminder,omitempty"`
	User              string      `json:"user,omitempty"`
	Stage             string      `json:"stage,omitempty"`
	Note              string      `json:"note,omitempty"`
	ExternallyManaged bool        `json:"externallyManaged,omitempty"`
	ExternalURL       string      `json:"externalUrl,omitempty"`
	CreatedAt         Timestamp   `json:"createdAt,omitempty"`
	CanceledAt        *Timestamp  `json:"canceledAt,omitempty"`
	Interviews        []Interview `json:"interviews,omitempty"`
}

// PanelCreate is the payload for scheduling a panel with its
// interviews.
type PanelCreate struct {
	Timezone          string            `json:"timezone,omitempty"`
	FeedbackReminder  string            `json:"feedbackReminder,omitempty"`
	Note              string            `json:"note,omitempty"`
	ExternallyManaged bool              `json:"externallyManaged,omitempty"`
	ExternalURL       string            `json:"externalUrl,omitempty"`
	Interviews        []InterviewCreate `json:"interviews"`
}

// List retrieves a page of panels for an opportunity.
func (s *PanelsService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Panel], error) {
	var out ListResponse[Panel]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListPanels, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single panel.
func (s *PanelsService) Get(ctx context.Context, opportunityID, panelID string, reqOpts ...RequestOption) (*Panel, error) {
	var out Response[Panel]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "panel": panelID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetPanel, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create schedules a panel on an opportunity.
func (s *PanelsService) Create(ctx context.Context, opportunityID string, create *PanelCreate, reqOpts ...RequestOption) (*Panel, error) {
	var out Response[Panel]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    create,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointCreatePanel, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update replaces the mutable fields of a panel.
func (s *PanelsService) Update(ctx context.Context, opportunityID, panelID string, update *PanelCreate, reqOpts ...RequestOption) (*Panel, error) {
	var out Response[Panel]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "panel": panelID},
		Body:    update,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointUpdatePanel, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Delete cancels and removes a panel.
func (s *PanelsService) Delete(ctx context.Context, opportunityID, panelID string, reqOpts ...RequestOption) error {
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "panel": panelID},
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpointDeletePanel, call, nil)
}
