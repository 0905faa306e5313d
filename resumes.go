package lever

import (
	"context"
	"net/http"

	"github.com/talentops/lever-go/internal/transport"
)

var (
	endpointListResumes = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/resumes"}
	endpointGetResume   = transport.Endpoint{Method: http.MethodGet, Path: "/opportunities/:opportunity/resumes/:resume"}
)

// ResumesService reads the resumes attached to an opportunity.
type ResumesService struct {
	client *Client
}

// Resume is an uploaded or parsed resume.
type Resume struct {
	ID         string      `json:"id"`
	CreatedAt  Timestamp   `json:"createdAt,omitempty"`
	File       *ResumeFile `json:"file,omitempty"`
	ParsedData *ParsedResume `json:"parsedData,omitempty"`
}

// ResumeFile describes the underlying uploaded file.
type ResumeFile struct {
	Name        string    `json:"name,omitempty"`
	Ext         string    `json:"ext,omitempty"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	UploadedAt  Timestamp `json:"uploadedAt,omitempty"`
	Status      string    `json:"status,omitempty"`
	Size        int64     `json:"size,omitempty"`
}

// ParsedResume holds the positions and schools extracted from a
// resume.
type ParsedResume struct {
	Positions []ResumePosition `json:"positions,omitempty"`
	Schools   []ResumeSchool   `json:"schools,omitempty"`
}

// ResumePosition is one work history entry parsed from a resume.
type ResumePosition struct {
	Org     string     `json:"org,omitempty"`
	Title   string     `json:"title,omitempty"`
	Summary string     `json:"summary,omitempty"`
	Start   *ResumeDate `json:"start,omitempty"`
	End     *ResumeDate `json:"end,omitempty"`
}

// ResumeSchool is one education entry parsed from a resume.
type ResumeSchool struct {
	Org     string     `json:"org,omitempty"`
	Degree  string     `json:"degree,omitempty"`
	Field   string     `json:"field,omitempty"`
	Summary string     `json:"summary,omitempty"`
	Start   *ResumeDate `json:"start,omitempty"`
	End     *ResumeDate `json:"end,omitempty"`
}

// ResumeDate is a month/year pair as parsed from resume text.
type ResumeDate struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// List retrieves a page of resumes for an opportunity.
func (s *ResumesService) List(ctx context.Context, opportunityID string, opts *ListOptions, reqOpts ...RequestOption) (*ListResponse[Resume], error) {
	var out ListResponse[Resume]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID},
		Query:   opts.query(),
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointListResumes, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single resume.
func (s *ResumesService) Get(ctx context.Context, opportunityID, resumeID string, reqOpts ...RequestOption) (*Resume, error) {
	var out Response[Resume]
	call := transport.Call{
		Params:  transport.Params{"opportunity": opportunityID, "resume": resumeID},
		Options: callOptions(reqOpts),
	}
	if err := s.client.do(ctx, endpointGetResume, call, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
