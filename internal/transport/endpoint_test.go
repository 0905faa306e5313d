package transport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointExpand(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		params   Params
		want     string
	}{
		{
			name:     "no placeholders",
			endpoint: Endpoint{Method: "GET", Path: "/tags"},
			params:   nil,
			want:     "/tags",
		},
		{
			name:     "single placeholder",
			endpoint: Endpoint{Method: "GET", Path: "/opportunities/:opportunity"},
			params:   Params{"opportunity": "op1"},
			want:     "/opportunities/op1",
		},
		{
			name:     "multiple placeholders",
			endpoint: Endpoint{Method: "GET", Path: "/opportunities/:opportunity/notes/:note"},
			params:   Params{"opportunity": "op1", "note": "n1"},
			want:     "/opportunities/op1/notes/n1",
		},
		{
			name:     "value is percent-encoded",
			endpoint: Endpoint{Method: "GET", Path: "/opportunities/:opportunity"},
			params:   Params{"opportunity": "abc 123"},
			want:     "/opportunities/abc%20123",
		},
		{
			name:     "placeholder before fixed suffix",
			endpoint: Endpoint{Method: "POST", Path: "/opportunities/:opportunity/addTags"},
			params:   Params{"opportunity": "op1"},
			want:     "/opportunities/op1/addTags",
		},
		{
			name:     "unmatched placeholder stays literal",
			endpoint: Endpoint{Method: "GET", Path: "/opportunities/:opportunity"},
			params:   Params{},
			want:     "/opportunities/:opportunity",
		},
		{
			name:     "extra params are ignored",
			endpoint: Endpoint{Method: "GET", Path: "/stages/:stage"},
			params:   Params{"stage": "s1", "unused": "zzz"},
			want:     "/stages/s1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.endpoint.Expand(tt.params))
		})
	}
}

func TestEndpointExpandSatisfiedLeavesNoTokens(t *testing.T) {
	ep := Endpoint{Method: "GET", Path: "/opportunities/:opportunity/interviews/:interview"}
	got := ep.Expand(Params{"opportunity": "op1", "interview": "iv1"})
	assert.False(t, strings.Contains(got, ":"), "expanded path %q still contains a placeholder token", got)
}

func TestEndpointExpandDoesNotMutate(t *testing.T) {
	ep := Endpoint{Method: "GET", Path: "/users/:user"}
	_ = ep.Expand(Params{"user": "u1"})
	assert.Equal(t, "/users/:user", ep.Path)
}
