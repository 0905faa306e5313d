package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListPostings  = transport.Endpoint{Method: http.MethodGet, Path: "/postings"}
	endpointGetPosting    = transport.Endpoint{Method: http.MethodGet, Path: "/postings/:posting"}
	endpointCreatePosting = transport.Endpoint{Method: http.MethodPost, Path: "/postings"}
	endpointUpdatePosting = transport.Endpoint{Method: http.MethodPost, Path: "/postings/:posting"}
)

// PostingsService manages job postings.
type PostingsService struct {
	client *Client
}

// Posting is a published or drafted job posting.
type Posting struct {
	ID                   string             `json:"id"`
	Text                 string             `json:"text,omitempty"`
	State                string             `json:"state,omitempty"`
	User                 string             `json:"user,omitempty"`
	Owner                string             `json:"owner,omitempty"`
	HiringManager        string             `json:"hiringManager,omitempty"`
	Confidentiality      string             `json:"confidentiality,omitempty"`
	Categories           *PostingCategories `json:"categories,omitempty"`
	Content              *PostingContent    `json:"content,omitempty"`
	Tags                 []string           `json:"tags,omitempty"`
	DistributionChannels []string           `json:"distributionChannels,omitempty"`
	ReqCode              string             `json:"reqCode,omitempty"`
	RequisitionCodes     []string           `json:"requisitionCodes,omitempty"`
	CreatedAt            Timestamp          `json:"createdAt,omitempty"`
	UpdatedAt            Timestamp          `json:"updatedAt,omitempty"`
	FollowersCount       int                `json:"followersCount,omitempty"`
	URLs                 *ResourceURLs      `json:"urls,omitempty"`
}

// PostingCategories groups a posting's classification fields.
type PostingCategories struct {
	Team       string `json:"team,omitempty"`
	Department string `json:"department,omitempty"`
	Location   string `json:"location,omitempty"`
	Commitment string `json:"commitment,omitempty"`
	Level      string `json:"level,omitempty"`
}

// PostingContent is the body of a posting.
type PostingContent struct {
	Description     string        `json:"description,omitempty"`
	DescriptionHTML string        `json:"descriptionHtml,omitempty"`
	Lists           []PostingList `json:"lists,omitempty"`
	Closing         string        `json:"closing,omitempty"`
	ClosingHTML     string        `json:"closingHtml,omitempty"`
}

// PostingList is one titled bullet list in a posting body.
type PostingList struct {
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// PostingCreate is the payload for creating or updating a posting.
type PostingCreate struct {
	Text            string             `json:"text"`
	State           string             `json:"state,omitempty"`
	Owner           string             `json:"owner,omitempty"`
	HiringManager   string             `json:"hiringManager,omitempty"`
	Confidentiality string             `json:"confidentiality,omitempty"`
	Categories      *PostingCategories `json:"categories,omitempty"`
	Content         *PostingContent    `json:"content,omitempty"`
	Tags            []string           `json:"tags,omitempty"`
	ReqCode         string             `json:"reqCode,omitempty"`
}

// PostingListOptions filters and paginates posting listings.
type PostingListOptions struct {
	Limit      int
	Offset     string
	State      string
	Team       string
	Department string
	Location   string
	Commitment string
	Level      string
	Tag        string
}

func (o *PostingListOptions) query() transport.Query {
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
	if o.State != "" {
		q["state"] = o.State
	}
	if o.Team != "" {
		q["team"] = o.Team
	}
	if o.Department != "" {
		q["department"] = o.Department
	}
	if o.Location != "" {
		q["location"] = o.Location
	}
	if o.Commitment != "" {
		q["commitment"] = o.Commitment
	}
	if o.Level != "" {
		q["level"] = o.Level
	}
	if o.Tag != "" {
		q["tag"] = o.Tag
	}
	return q
}

// List retrieves a page of postings.
func (s *PostingsService) List(ctx context.Context, opts *PostingListOptions, reqOpts ...RequestOption) (*ListResponse[Posting], error) {
	var out ListResponse[Posting]
	call := transport.Call{Query: opts.query(), Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointListPostings, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single posting by id.
func (s *PostingsService) Get(ctx context.Context, postingID string, reqOpts ...RequestOption) (*Posting, error) {
	var out Response[Posting]
	call := transport.Call{
		Params:  transport.Params{"posting": postingID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetPosting, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create publishes or drafts a new posting.
func (s *PostingsService) Create(ctx context.Context, create *PostingCreate, reqOpts ...RequestOption) (*Posting, error) {
	var out Response[Posting]
	call := transport.Call{Body: create, Options: callOptions(reqOpts)}
	if err := s.client.do(ctx, endpointCreatePosting, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update replaces the mutable fields of a posting. The remote API
// models this as a POST to the posting.
func (s *PostingsService) Update(ctx context.Context, postingID string, update *PostingCreate, reqOpts ...RequestOption) (*Posting, error) {
	var out Response[Posting]
	call := transport.Call{
		Params:  transport.Params{"posting": postingID},
		Body:    update,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointUpdatePosting, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
