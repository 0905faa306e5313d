package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListNotes  = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/notes"}
	endpointGetNote    = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/notes/:note"}
	endpointCreateNote = transport.Endpoint{Method: http.MethodPost, Path: "/opportunities/:opportunity/notes"}
)

// NotesService manages free-form notes on an opportunity.
type NotesService struct {
	client *Client
}

// Note is a comment thread on an opportunity.
type Note struct {
	ID          string      `json:"id"`
	Text        string      `json:"text,omitempty"`
	Fields      []NoteField `json:"fields,omitempty"`
	User        string      `json:"user,omitempty"`
	Secret      bool        `json:"secret,omitempty"`
	CompletedAt Timestamp   `json:"completedAt,omitempty"`
	CreatedAt   Timestamp   `json:"createdAt,omitempty"`
	DeletedAt   *Timestamp  `json:"deletedAt,omitempty"`
}

// NoteField is one entry in a note's comment thread.
type NoteField struct {
	Type      string    `json:"type,omitempty"`
	Text      string    `json:"text,omitempty"`
	Value     string    `json:"value,omitempty"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
	User      string    `json:"user,omitempty"`
	Score     int       `json:"score,omitempty"`
	Stage     string    `json:"stage,omitempty"`
}

// NoteCreate is the payload for adding a note.
type NoteCreate struct {
	Value           string     `json:"value"`
	Secret          bool       `json:"secret,omitempty"`
	Score           int        `json:"score,omitempty"`
	NotifyFollowers bool       `json:"notifyFollowers,omitempty"`
	CreatedAt       *Timestamp `json:"createdAt,omitempty"`
}

// List retrieves a page of notes on an opportunity.
func (s *NotesService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Note], error) {
	var out ListResponse[Note]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListNotes, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single note.
func (s *NotesService) Get(ctx context.Context, opportunityID, noteID string, reqOpts ...RequestOption) (*Note, error) {
	var out Response[Note]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "note": noteID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetNote, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create adds a note to an opportunity.
func (s *NotesService) Create(ctx context.Context, opportunityID string, create *NoteCreate, reqOpts ...RequestOption) (*Note, error) {
	var out Response[Note]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Body:    create,
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointCreateNote, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
