// Package lever provides a typed Go client for the Lever Hire REST API.
// It exposes one service per remote resource (opportunities, postings,
// interviews, and so on), each a thin typed wrapper over a single
// request executor.
//
// Every call issues exactly one HTTP request. There is no retrying, no
// caching, and no pagination auto-traversal: list responses carry a
// Next cursor that the caller follows explicitly.
//
// Example usage:
//
//	client, err := lever.New(os.Getenv("LEVER_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := client.Opportunities.List(ctx, &OpportunityListOptions{Limit: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, opp := range page.Data {
//	    fmt.Println(opp.ID, opp.Name)
//	}
//	if page.HasNext {
//	    page, err = client.Opportunities.List(ctx, &OpportunityListOptions{Offset: page.Next})
//	}
package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
	"github.com/talentops/lever-go/pkg/errors"
)

// DefaultBaseURL is the fixed root of the Lever Hire API.
const DefaultBaseURL = "https://api.lever.co/v1"

// Client is the entry point for the Lever API. Construct one with New;
// the zero value is not usable.
type Client struct {
	transport *transport.Client

	Opportunities  *OpportunitiesService
	Applications   *ApplicationsService
	Interviews     *InterviewsService
	Notes          *NotesService
	Panels         *PanelsService
	Offers         *OffersService
	Feedback       *FeedbackService
	Resumes        *ResumesService
	Referrals      *ReferralsService
	Postings       *PostingsService
	Tags           *TagsService
	Sources        *SourcesService
	Stages         *StagesService
	ArchiveReasons *ArchiveReasonsService
	Users          *UsersService
	Requisitions   *RequisitionsService
	AuditEvents    *AuditEventsService
}

// New creates a new Lever client authenticated with the given API key.
// The key is used as the HTTP Basic username with an empty password on
// every request; the client holds no other credential state.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	c := &Client{
		transport: transport.New(transport.Config{
			BaseURL:    cfg.baseURL,
			APIKey:     apiKey,
			UserAgent:  cfg.userAgent,
			HTTPClient: cfg.httpClient,
			Logger:     cfg.logger,
		}),
	}

	c.Opportunities = &OpportunitiesService{client: c}
	c.Applications = &ApplicationsService{client: c}
	c.Interviews = &InterviewsService{client: c}
	c.Notes = &NotesService{client: c}
	c.Panels = &PanelsService{client: c}
	c.Offers = &OffersService{client: c}
	c.Feedback = &FeedbackService{client: c}
	c.Resumes = &ResumesService{client: c}
	c.Referrals = &ReferralsService{client: c}
	c.Postings = &PostingsService{client: c}
	c.Tags = &TagsService{client: c}
	c.Sources = &SourcesService{client: c}
	c.Stages = &StagesService{client: c}
	c.ArchiveReasons = &ArchiveReasonsService{client: c}
	c.Users = &UsersService{client: c}
	c.Requisitions = &RequisitionsService{client: c}
	c.AuditEvents = &AuditEventsService{client: c}

	return c, nil
}

// do executes one endpoint call through the transport.
func (c *Client) do(ctx context.Context, endpoint transport.Endpoint, call transport.Call, target any) error {
	return c.transport.Do(ctx, endpoint, call, target)
}

// RequestOption customizes the outgoing HTTP request. Options are
// applied after all computed defaults, so they win on collision:
// a caller can replace any header, including Authorization.
type RequestOption func(*http.Request)

// WithRequestHeader sets a header on the outgoing request, replacing
// any computed default of the same name.
func WithRequestHeader(key, value string) RequestOption {
	return RequestOption(transport.WithHeader(key, value))
}

// PerformAs attributes a write operation to the given user instead of
// the API key's owner, via Lever's perform_as query parameter.
func PerformAs(userID string) RequestOption {
	return RequestOption(transport.WithQueryValue("perform_as", userID))
}

// callOptions converts public request options to their transport form.
func callOptions(opts []RequestOption) []transport.RequestOption {
	if len(opts) == 0 {
		return nil
	}
	out := make([]transport.RequestOption, len(opts))
	for i, opt := range opts {
		out[i] = transport.RequestOption(opt)
	}
	return out
}
