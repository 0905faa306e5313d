package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListInterviews  = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/interviews"}
	endpointGetInterview    = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/interviews/:interview"}
	endpointCreateInterview = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/interviews"}
	endpointUpdateInterview = transport.Endpoint{Method: http.MethodPut, Path: "/opportunities/:opportunity/interviews/:interview"}
	endpointDeleteInterview = transport.Endpoint{Method: http.MethodDelete, Path: "/opportunities/:opportunity/interviews/:interview"}
)

// InterviewsService manages individual interview events on an
// opportunity. Interviews belong to a panel.
type InterviewsService struct {
	client *Client
}

// Interviewer identifies a user on an interview.
type Interviewer struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Interview is a single scheduled interview event.
type Interview struct {
	ID               string        `json:"id"`
	Panel            string        `json:"panel,omitempty"`
	Subject          string        `json:"subject,omitempty"`
	Note             string        `json:"note,omitempty"`
	Interviewers     []Interviewer `json:"interviewers,omitempty"`
	Timezone         string        `json:"timezone,omitempty"`
	CreatedAt        Timestamp     `json:"createdAt,omitempty"`
	Date             Timestamp     `json:"date,omitempty"`
	Duration         int           `json:"duration,omitempty"`
	Location         string        `json:"location,omitempty"`
	FeedbackTemplate string        `json:"feedbackTemplate,omitempty"`
	FeedbackForms    []string      `json:"feedbackForms,omitempty"`
	FeedbackReminder string        `json:"feedbackReminder,omitempty"`
	User             string        `json:"user,omitempty"`
	Stage            string        `json:"stage,omitempty"`
	CanceledAt       *Timestamp    `json:"canceledAt,omitempty"`
	Postings         []string      `json:"postings,omitempty"`
}

// InterviewCreate is the payload for scheduling an interview.
type InterviewCreate struct {
	Panel            string        `json:"panel"`
	Subject          string        `json:"subject,omitempty"`
	Note             string        `json:"note,omitempty"`
	Interviewers     []Interviewer `json:"interviewers,omitempty"`
	Date             *Timestamp    `json:"date,omitempty"`
	Duration         int           `json:"duration,omitempty"`
	Location         string        `json:"location,omitempty"`
	FeedbackTemplate string        `json:"feedbackTemplate,omitempty"`
	FeedbackReminder string        `json:"feedbackReminder,omitempty"`
}

// List retrieves a page of interviews for an opportunity.
func (s *InterviewsService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Interview], error) {
	var out ListResponse[Interview]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListInterviews, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single interview.
func (s *InterviewsService) Get(ctx context.Context, opportunityID, interviewID string, reqOpts ...RequestOption) (*Interview, error) {
	var out Response[Interview]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "interview": interviewID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetInterview, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create schedules an interview on an opportunity.
func (s *InterviewsService) Create(ctx context.Context, opportunityID string, create *InterviewCreate, reqOpts ...RequestOption) (*Interview, error) {
	var out Response[Interview]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    create,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointCreateInterview, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update replaces the mutable fields of an interview.
func (s *InterviewsService) Update(ctx context.Context, opportunityID, interviewID string, update *InterviewCreate, reqOpts ...RequestOption) (*Interview, error) {
	var out Response[Interview]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "interview": interviewID},
		Body:    update,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointUpdateInterview, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Delete cancels and removes an interview.
func (s *InterviewsService) Delete(ctx context.Context, opportunityID, interviewID string, reqOpts ...RequestOption) error {
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "interview": interviewID},
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpointDeleteInterview, call, nil)
}
