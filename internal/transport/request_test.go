package transport

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryEncode(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"nil query", nil, ""},
		{"empty query", Query{}, ""},
		{"string value", Query{"email": "jane@example.com"}, "email=jane%40example.com"},
		{"bool value", Query{"expand": true}, "expand=true"},
		{"int value", Query{"limit": 25}, "limit=25"},
		{"int64 value", Query{"created_at_start": int64(1407460071043)}, "created_at_start=1407460071043"},
		{"float value", Query{"score": 4.5}, "score=4.5"},
		{"nil value dropped", Query{"limit": 25, "offset": nil}, "limit=25"},
		{"all nil values", Query{"a": nil, "b": nil}, ""},
		{"keys sorted", Query{"b": "2", "a": "1"}, "a=1&b=2"},
		{"percent encoding", Query{"tag": "on hold"}, "tag=on+hold"},
		{"slice repeats key", Query{"expand": []string{"applications", "stage"}}, "expand=applications&expand=stage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Encode())
		})
	}
}

func TestQueryEncodeEachKeyOnce(t *testing.T) {
	q := Query{"limit": 25, "stage_id": "s1", "archived": false}
	values, err := url.ParseQuery(q.Encode())
	require.NoError(t, err)

	assert.Len(t, values, 3)
	for key := range values {
		assert.Len(t, values[key], 1, "key %q should appear exactly once", key)
	}
}

func TestWithHeaderReplaces(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}
	req.Header.Set("Content-Type", "application/json")

	WithHeader("Content-Type", "text/plain")(req)

	assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
	assert.Len(t, req.Header.Values("Content-Type"), 1)
}

func TestWithQueryValue(t *testing.T) {
	reqURL, err := url.Parse("https://api.lever.co/v1/opportunities?limit=10")
	require.NoError(t, err)
	req := &http.Request{URL: reqURL, Header: make(http.Header)}

	WithQueryValue("perform_as", "user-1")(req)

	query := req.URL.Query()
	assert.Equal(t, "user-1", query.Get("perform_as"))
	assert.Equal(t, "10", query.Get("limit"))
}
