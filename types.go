package lever

import (
	"strconv"
	"time"
)

// Timestamp wraps time.Time and serializes as integer milliseconds
// since the Unix epoch, the representation the Lever API uses for all
// timestamps.
type Timestamp struct {
	time.Time
}

// NewTimestamp creates a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Millis returns the timestamp as epoch milliseconds.
func (t Timestamp) Millis() int64 {
	return t.UnixMilli()
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

// Response is the envelope the API wraps every single-resource payload
// in: {"data": {...}}.
type Response[T any] struct {
	Data T `json:"data"`
}

// ListResponse is the envelope for collection payloads. When HasNext
// is true, passing Next as the Offset of the following list call
// retrieves the next page. The client never follows cursors itself.
type ListResponse[T any] struct {
	Data    []T    `json:"data"`
	HasNext bool   `json:"hasNext"`
	Next    string `json:"next"`
}

// Phone is a labeled phone number on a contact.
type Phone struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Archived records why and when an opportunity left the pipeline.
type Archived struct {
	ArchivedAt Timestamp `json:"archivedAt"`
	Reason     string    `json:"reason"`
}

// StageChange is one entry in an opportunity's stage history.
type StageChange struct {
	ToStageID    string    `json:"toStageId"`
	ToStageIndex int       `json:"toStageIndex"`
	UpdatedAt    Timestamp `json:"updatedAt"`
	UserID       string    `json:"userId"`
}

// ResourceURLs are in-app links to the resource.
type ResourceURLs struct {
	List string `json:"list,omitempty"`
	Show string `json:"show,omitempty"`
}

// FormField is one field of a form-shaped resource (feedback, notes,
// offers, referrals). Value types vary per field type, so Value stays
// untyped.
type FormField struct {
	Type        string `json:"type,omitempty"`
	Text        string `json:"text,omitempty"`
	Identifier  string `json:"identifier,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Value       any    `json:"value,omitempty"`
}
