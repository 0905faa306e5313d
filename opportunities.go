package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListOpportunities = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities"}
	endpointGetOpportunity    = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity"}
	endpointCreateOpportunity = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities"}
	endpointUpdateStage       = transport.Endpoint{Method: http.MethodPut, Path: "/opportunities/:opportunity/stage"}
	endpointUpdateArchived    = transport.Endpoint{Method: http.MethodPut, Path: "/opportunities/:opportunity/archived"}
	endpointAddTags           = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/addTags"}
	endpointRemoveTags        = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/removeTags"}
	endpointAddSources        = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/addSources"}
	endpointRemoveSources     = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/removeSources"}
	endpointAddLinks          = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/addLinks"}
	endpointRemoveLinks       = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/removeLinks"}
)

// OpportunitiesService handles candidates in the pipeline. An
// opportunity is one candidate's journey for one job consideration.
type OpportunitiesService struct {
	client *Client
}

// Opportunity is a candidate's pipeline record.
type Opportunity struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Headline          string        `json:"headline,omitempty"`
	Contact           string        `json:"contact,omitempty"`
	Emails            []string      `json:"emails,omitempty"`
	Phones            []Phone       `json:"phones,omitempty"`
	Confidentiality   string        `json:"confidentiality,omitempty"`
	Location          string        `json:"location,omitempty"`
	Links             []string      `json:"links,omitempty"`
	Archived          *Archived     `json:"archived,omitempty"`
	Tags              []string      `json:"tags,omitempty"`
	Sources           []string      `json:"sources,omitempty"`
	Origin            string        `json:"origin,omitempty"`
	SourcedBy         string        `json:"sourcedBy,omitempty"`
	Owner             string        `json:"owner,omitempty"`
	Followers         []string      `json:"followers,omitempty"`
	Applications      []string      `json:"applications,omitempty"`
	Stage             string        `json:"stage,omitempty"`
	StageChanges      []StageChange `json:"stageChanges,omitempty"`
	CreatedAt         Timestamp     `json:"createdAt,omitempty"`
	UpdatedAt         Timestamp     `json:"updatedAt,omitempty"`
	LastInteractionAt Timestamp     `json:"lastInteractionAt,omitempty"`
	LastAdvancedAt    Timestamp     `json:"lastAdvancedAt,omitempty"`
	SnoozedUntil      *Timestamp    `json:"snoozedUntil,omitempty"`
	URLs              *ResourceURLs `json:"urls,omitempty"`
}

// OpportunityListOptions filters and paginates opportunity listings.
// Zero-valued fields are omitted from the query.
type OpportunityListOptions struct {
	Limit            int
	Offset           string
	Tag              string
	Email            string
	Origin           string
	Source           string
	StageID          string
	PostingID        string
	Archived         *bool
	ArchiveReasonID  string
	CreatedAtStart   *Timestamp
	CreatedAtEnd     *Timestamp
	UpdatedAtStart   *Timestamp
	UpdatedAtEnd     *Timestamp
	AdvancedAtStart  *Timestamp
	AdvancedAtEnd    *Timestamp
	ArchivedAtStart  *Timestamp
	ArchivedAtEnd    *Timestamp
	Expand           []string
}

func (o *OpportunityListOptions) query() transport.Query {
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
	if o.Tag != "" {
		q["tag"] = o.Tag
	}
	if o.Email != "" {
		q["email"] = o.Email
	}
	if o.Origin != "" {
		q["origin"] = o.Origin
	}
	if o.Source != "" {
		q["source"] = o.Source
	}
	if o.StageID != "" {
		q["stage_id"] = o.StageID
	}
	if o.PostingID != "" {
		q["posting_id"] = o.PostingID
	}
	if o.Archived != nil {
		q["archived"] = *o.Archived
	}
	if o.ArchiveReasonID != "" {
		q["archive_reason_id"] = o.ArchiveReasonID
	}
	addTimeRange(q, "created_at_start", o.CreatedAtStart)
	addTimeRange(q, "created_at_end", o.CreatedAtEnd)
	addTimeRange(q, "updated_at_start", o.UpdatedAtStart)
	addTimeRange(q, "updated_at_end", o.UpdatedAtEnd)
	addTimeRange(q, "advanced_at_start", o.AdvancedAtStart)
	addTimeRange(q, "advanced_at_end", o.AdvancedAtEnd)
	addTimeRange(q, "archived_at_start", o.ArchivedAtStart)
	addTimeRange(q, "archived_at_end", o.ArchivedAtEnd)
	if len(o.Expand) > 0 {
		q["expand"] = o.Expand
	}
	return q
}

// addTimeRange adds an epoch-millis range bound when set.
func addTimeRange(q transport.Query, key string, t *Timestamp) {
	if t != nil {
		q[key] = t.Millis()
	}
}

// OpportunityCreate is the payload for creating an opportunity.
type OpportunityCreate struct {
	Name     string    `json:"name,omitempty"`
	Headline string    `json:"headline,omitempty"`
	Emails   []string  `json:"emails,omitempty"`
	Phones   []Phone   `json:"phones,omitempty"`
	Location string    `json:"location,omitempty"`
	Links    []string  `json:"links,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Sources  []string  `json:"sources,omitempty"`
	Origin   string    `json:"origin,omitempty"`
	Owner    string    `json:"owner,omitempty"`
	StageID  string    `json:"stage,omitempty"`
	Postings []string  `json:"postings,omitempty"`
	Archived *Archived `json:"archived,omitempty"`
}

// List retrieves a page of opportunities.
func (s *OpportunitiesService) List(ctx context.Context, opts *OpportunityListOptions, reqOpts ...RequestOption) (*ListResponse[Opportunity], error) {
	var out ListResponse[Opportunity]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListOpportunities, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single opportunity by id.
func (s *OpportunitiesService) Get(ctx context.Context, opportunityID string, reqOpts ...RequestOption) (*Opportunity, error) {
	var out Response[Opportunity]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetOpportunity, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create adds a new opportunity to the pipeline.
func (s *OpportunitiesService) Create(ctx context.Context, create *OpportunityCreate, reqOpts ...RequestOption) (*Opportunity, error) {
	var out Response[Opportunity]
	call := transport.Call{Body: create, Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointCreateOpportunity, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateStage moves the opportunity to a different pipeline stage.
func (s *OpportunitiesService) UpdateStage(ctx context.Context, opportunityID, stageID string, reqOpts ...RequestOption) error {
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    map[string]string{"stage": stageID},
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpointUpdateStage, call, nil)
}

// UpdateArchived archives the opportunity under the given reason, or
// unarchives it when reasonID is empty.
func (s *OpportunitiesService) UpdateArchived(ctx context.Context, opportunityID, reasonID string, reqOpts ...RequestOption) error {
	body := map[string]any{"reason": nil}
	if reasonID != "" {
		body["reason"] = reasonID
	}
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    body,
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpointUpdateArchived, call, nil)
}

// AddTags adds tags to the opportunity.
func (s *OpportunitiesService) AddTags(ctx context.Context, opportunityID string, tags []string, reqOpts ...RequestOption) error {
	return s.mutateList(ctx, endpointAddTags, opportunityID, "tags", tags, reqOpts)
}

// RemoveTags removes tags from the opportunity.
func (s *OpportunitiesService) RemoveTags(ctx context.Context, opportunityID string, tags []string, reqOpts ...RequestOption) error {
	return s.mutateList(ctx, endpointRemoveTags, opportunityID, "tags", tags, reqOpts)
}

// AddSources adds sources to the opportunity.
func (s *OpportunitiesService) AddSources(ctx context.Context, opportunityID string, sources []string, reqOpts ...RequestOption) error {
	return s.mutateList(ctx, endpointAddSources, opportunityID, "sources", sources, reqOpts)
}

// RemoveSources removes sources from the opportunity.
func (s *OpportunitiesService) RemoveSources(ctx context.Context, opportunityID string, sources []string, reqOpts ...RequestOption) error {
	return s.mutateList(ctx, endpointRemoveSources, opportunityID, "sources", sources, reqOpts)
}

// AddLinks adds links to the opportunity.
func (s *OpportunitiesService) AddLinks(ctx context.Context, opportunityID string, links []string, reqOpts ...RequestOption) error {
	return s.mutateList(ctx, endpointAddLinks, opportunityID, "links", links, reqOpts)
}

// RemoveLinks removes links from the opportunity.
func (s *OpportunitiesService) RemoveLinks(ctx context.Context, opportunityID string, links []string, reqOpts ...RequestOption) error {
	return s.mutateList(ctx, endpointRemoveLinks, opportunityID, "links", links, reqOpts)
}

// mutateList posts a single-key list payload to an opportunity
// sub-resource. All the add/remove endpoints share this shape.
func (s *OpportunitiesService) mutateList(ctx context.Context, endpoint transport.Endpoint, opportunityID, key string, values []string, reqOpts []RequestOption) error {
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    map[string][]string{key: values},
		Options: callOptions(reqOpts),
	}
	return s.client.do(ctx, endpoint, call, nil)
}
