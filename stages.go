package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListStages = transport.Endpoint{Method: http.MethodGet, Path: "/stages"}
	endpointGetStage   = transport.Endpoint{Method: http.MethodGet, Path: "/stages/:stage"}
)

// StagesService reads the pipeline stages configured for the account.
type StagesService struct {
	client *Client
}

// Stage is one step of the hiring pipeline.
type Stage struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// List retrieves a page of stages.
func (s *StagesService) List(ctx context.Context, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Stage], error) {
	var out ListResponse[Stage]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListStages, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single stage by id.
func (s *StagesService) Get(ctx context.Context, stageID string, reqOpts ...RequestOption) (*Stage, error) {
	var out Response[Stage]
	call := transport.Call{
		Params:  transport.Params{"stage": stageID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetStage, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
