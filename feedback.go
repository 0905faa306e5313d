package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListFeedback   = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/feedback"}
	endpointGetFeedback    = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/feedback/:feedback"}
	endpointCreateFeedback = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/feedback"}
	endpointUpdateFeedback = transport.Endpoint{Method: http.MethodPut, Path: "/opportunities/:opportunity/feedback/:feedback"}
	endpointDeleteFeedback = transport.Endpoint{Method: http.MethodDelete, Path: "/opportunities/:opportunity/feedback/:feedback"}
)

// FeedbackService manages interview feedback forms on an opportunity.
type FeedbackService struct {
	client *Client
}

// Feedback is a completed or pending feedback form.
type Feedback struct {
	ID             string      `json:"id"`
	Type           string      `json:"type,omitempty"`
	Text           string      `json:"text,omitempty"`
	Instructions   string      `json:"instructions,omitempty"`
	Fields         []FormField `json:"fields,omitempty"`
	BaseTemplateID string      `json:"baseTemplateId,omitempty"`
	Interview      string      `json:"interview,omitempty"`
	Panel          string      `json:"panel,omitempty"`
	User           string      `json:"user,omitempty"`
	CreatedAt      Timestamp   `json:"createdAt,omitempty"`
	CompletedAt    Timestamp   `json:"completedAt,omitempty"`
	UpdatedAt      Timestamp   `json:"updatedAt,omitempty"`
	DeletedAt      *Timestamp  `json:"deletedAt,omitempty"`
}

// FeedbackCreate is the payload for submitting a feedback form.
type FeedbackCreate struct {
	BaseTemplateID string      `json:"baseTemplateId,omitempty"`
	Panel          string      `json:"panel,omitempty"`
	Interview      string      `json:"interview,omitempty"`
	FieldValues    []FormField `json:"fieldValues,omitempty"`
}

// List retrieves a page of feedback forms for an opportunity.
func (s *FeedbackService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Feedback], error) {
	var out ListResponse[Feedback]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListFeedback, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single feedback form.
func (s *FeedbackService) Get(ctx context.Context, opportunityID, feedbackID string, reqOpts ...RequestOption) (*Feedback, error) {
	var out Response[Feedback]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "feedback": feedbackID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetFeedback, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create submits a feedback form on an opportunity.
func (s *FeedbackService) Create(ctx context.Context, opportunityID string, create *FeedbackCreate, reqOpts ...RequestOption) (*Feedback, error) {
	var out Response[Feedback]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    create,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointCreateFeedback, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update replaces the field values of a feedback form.
func (s *FeedbackService) Update(ctx context.Context, opportunityID, feedbackID string, update *FeedbackCreate, reqOpts ...RequestOption) (*Feedback, error) {
	var out Response[Feedback]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "feedback": feedbackID},
		Body:    update,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointUpdateFeedback, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Delete removes a feedback form.
func (s *FeedbackService) Delete(ctx context.Context, opportunityID, feedbackID string, reqOpts ...RequestOption) error {
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "feedback": feedbackID},
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpointDeleteFeedback, call, nil)
}
