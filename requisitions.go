package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListRequisitions  = transport.Endpoint{Method: http.MethodGet, Path: "/requisitions"}
	endpointGetRequisition    = transport.Endpoint{Method: http.MethodGet, Path: "/requisitions/:requisition"}
	endpointCreateRequisition = transport.Endpoint{Method: http.MethodPost, Path: "/requisitions"}
	endpointUpdateRequisition = transport.Endpoint{Method: http.MethodPut, Path: "/requisitions/:requisition"}
	endpointDeleteRequisition = transport.Endpoint{Method: http.MethodDelete, Path: "/requisitions/:requisition"}
)

// RequisitionsService manages hiring requisitions.
type RequisitionsService struct {
	client *Client
}

// Requisition is an approved headcount to hire against.
type Requisition struct {
	ID               string            `json:"id"`
	RequisitionCode  string            `json:"requisitionCode,omitempty"`
	Name             string            `json:"name,omitempty"`
	Backfill         bool              `json:"backfill,omitempty"`
	Creator          string            `json:"creator,omitempty"`
	HeadcountHired   int               `json:"headcountHired,omitempty"`
	HeadcountTotal   int               `json:"headcountTotal,omitempty"`
	Status           string            `json:"status,omitempty"`
	HiringManager    string            `json:"hiringManager,omitempty"`
	Owner            string            `json:"owner,omitempty"`
	CompensationBand *CompensationBand `json:"compensationBand,omitempty"`
	EmploymentStatus string            `json:"employmentStatus,omitempty"`
	Location         string            `json:"location,omitempty"`
	Team             string            `json:"team,omitempty"`
	Department       string            `json:"department,omitempty"`
	Confidentiality  string            `json:"confidentiality,omitempty"`
	InternalNotes    string            `json:"internalNotes,omitempty"`
	Postings         []string          `json:"postings,omitempty"`
	OfferIDs         []string          `json:"offerIds,omitempty"`
	CreatedAt        Timestamp         `json:"createdAt,omitempty"`
	CustomFields     map[string]any    `json:"customFields,omitempty"`
}

// CompensationBand is the salary range attached to a requisition.
type CompensationBand struct {
	Currency string  `json:"currency,omitempty"`
	Interval string  `json:"interval,omitempty"`
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
}

// RequisitionCreate is the payload for creating or updating a
// requisition.
type RequisitionCreate struct {
	RequisitionCode  string            `json:"requisitionCode"`
	Name             string            `json:"name"`
	HeadcountTotal   int               `json:"headcountTotal,omitempty"`
	Status           string            `json:"status,omitempty"`
	Backfill         bool              `json:"backfill,omitempty"`
	HiringManager    string            `json:"hiringManager,omitempty"`
	Owner            string            `json:"owner,omitempty"`
	CompensationBand *CompensationBand `json:"compensationBand,omitempty"`
	EmploymentStatus string            `json:"employmentStatus,omitempty"`
	Location         string            `json:"location,omitempty"`
	Team             string            `json:"team,omitempty"`
	Department       string            `json:"department,omitempty"`
	InternalNotes    string            `json:"internalNotes,omitempty"`
	CustomFields     map[string]any    `json:"customFields,omitempty"`
}

// RequisitionListOptions filters and paginates requisition listings.
type RequisitionListOptions struct {
	Limit           int
	Offset          string
	Status          string
	RequisitionCode string
	CreatedAtStart  *Timestamp
	CreatedAtEnd    *Timestamp
}

func (o *RequisitionListOptions) query() transport.Query {
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
	if o.Status != "" {
		q["status"] = o.Status
	}
	if o.RequisitionCode != "" {
		q["requisition_code"] = o.RequisitionCode
	}
	addTimeRange(q, "created_at_start", o.CreatedAtStart)
	addTimeRange(q, "created_at_end", o.CreatedAtEnd)
	return q
}

// List retrieves a page of requisitions.
func (s *RequisitionsService) List(ctx context.Context, opts *RequisitionListOptions, reqOpts ...RequestOption) (*ListResponse[Requisition], error) {
	var out ListResponse[Requisition]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListRequisitions, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single requisition by id.
func (s *RequisitionsService) Get(ctx context.Context, requisitionID string, reqOpts ...RequestOption) (*Requisition, error) {
	var out Response[Requisition]
	call := transport.Call{
		Params:  transport.Params{"requisition": requisitionID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetRequisition, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create opens a new requisition.
func (s *RequisitionsService) Create(ctx context.Context, create *RequisitionCreate, reqOpts ...RequestOption) (*Requisition, error) {
	var out Response[Requisition]
	call := transport.Call{Body: create, Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointCreateRequisition, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update replaces the mutable fields of a requisition.
func (s *RequisitionsService) Update(ctx context.Context, requisitionID string, update *RequisitionCreate, reqOpts ...RequestOption) (*Requisition, error) {
	var out Response[Requisition]
	call := transport.Call{
		Params:  transport.Params{"requisition": requisitionID},
		Body:    update,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointUpdateRequisition, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Delete removes a requisition.
func (s *RequisitionsService) Delete(ctx context.Context, requisitionID string, reqOpts ...RequestOption) error {
	call := transport.Call{
		Params:  transport.Params{"requisition": requisitionID},
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpointDeleteRequisition, call, nil)
}
