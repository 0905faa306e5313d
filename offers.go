package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var endpointListOffers = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/offers"}

// OffersService reads the offers extended to a candidate. Offers are
// authored in-app, so the API exposes them read-only.
type OffersService struct {
	client *Client
}

// Offer is an offer extended on an opportunity.
type Offer struct {
	ID        string      `json:"id"`
	CreatedAt Timestamp   `json:"createdAt,omitempty"`
	Status    string      `json:"status,omitempty"`
	Creator   string      `json:"creator,omitempty"`
	Fields    []FormField `json:"fields,omitempty"`
	SentDocument   *OfferDocument `json:"sentDocument,omitempty"`
	SignedDocument *OfferDocument `json:"signedDocument,omitempty"`
}

// OfferDocument is a document attached to an offer.
type OfferDocument struct {
	FileName    string `json:"fileName,omitempty"`
	UploadedAt  Timestamp `json:"uploadedAt,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// List retrieves a page of offers for an opportunity.
func (s *OffersService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Offer], error) {
	var out ListResponse[Offer]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListOffers, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
