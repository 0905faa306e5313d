package transport

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/lever-go/pkg/errors"
	"github.com/talentops/lever-go/pkg/logging"
)

// recordedRequest captures what the test server received.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.Query = r.URL.RawQuery
		recorded.Header = r.Header.Clone()
		recorded.Body, _ = io.ReadAll(r.Body)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := New(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Logger:  logging.NewNopLogger(),
	})
	return client, recorded
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestDoDecodesResponse(t *testing.T) {
	client, recorded := newTestClient(t, jsonHandler(200, `{"data":{"id":"x"}}`))

	var out struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/opportunities/:opportunity"},
		Call{Params: Params{"opportunity": "x"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, "x", out.Data.ID)
	assert.Equal(t, "/opportunities/x", recorded.Path)
}

func TestDoBasicAuthHeader(t *testing.T) {
	client, recorded := newTestClient(t, jsonHandler(200, `{}`))

	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/tags"}, Call{}, nil)
	require.NoError(t, err)

	header := recorded.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(header, "Basic "))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	require.NoError(t, err)
	assert.Equal(t, "test-key:", string(decoded))
}

func TestDoGetNeverSendsBody(t *testing.T) {
	client, recorded := newTestClient(t, jsonHandler(200, `{}`))

	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/postings"},
		Call{Body: map[string]string{"ignored": "yes"}}, nil)
	require.NoError(t, err)

	assert.Empty(t, recorded.Body)
	assert.Empty(t, recorded.Header.Get("Content-Type"))
}

func TestDoPostSerializesBody(t *testing.T) {
	client, recorded := newTestClient(t, jsonHandler(200, `{}`))

	ep := Endpoint{Method: "POST", Path: "/opportunities/:opportunity/addTags"}
	call := Call{
		Params: Params{"opportunity": "op1"},
		Body:   map[string][]string{"tags": {"a", "b"}},
	}
	err := client.Do(context.Background(), ep, call, nil)
	require.NoError(t, err)

	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "/opportunities/op1/addTags", recorded.Path)
	assert.Equal(t, "application/json", recorded.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"tags":["a","b"]}`, string(recorded.Body))
}

func TestDoQueryEncoding(t *testing.T) {
	client, recorded := newTestClient(t, jsonHandler(200, `{"data":[]}`))

	call := Call{Query: Query{"limit": 25, "tag": "on hold", "offset": nil}}
	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/opportunities"}, call, nil)
	require.NoError(t, err)

	assert.Equal(t, "limit=25&tag=on+hold", recorded.Query)
}

func TestDoEmptyQueryOmitsQuestionMark(t *testing.T) {
	client := New(Config{BaseURL: "https://api.lever.co/v1", APIKey: "k", Logger: logging.NewNopLogger()})

	u := client.URL(Endpoint{Method: "GET", Path: "/sources"}, Call{Query: Query{"skip": nil}})
	assert.Equal(t, "https://api.lever.co/v1/sources", u)
}

func TestDoNonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(404, `{"code":"ResourceNotFound"}`))

	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/opportunities/:opportunity"},
		Call{Params: Params{"opportunity": "missing"}}, nil)
	require.Error(t, err)

	var rfe *errors.RequestFailedError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, 404, rfe.StatusCode)
	assert.Equal(t, "GET", rfe.Method)
	assert.Contains(t, rfe.URL, "/opportunities/missing")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestDoMalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(200, `{"data":`))

	var out map[string]any
	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/tags"}, Call{}, &out)
	require.Error(t, err)

	var mre *errors.MalformedResponseError
	assert.ErrorAs(t, err, &mre)
}

func TestDoEmptyBodyIsMalformedWhenDecoding(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(200, ``))

	var out map[string]any
	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/tags"}, Call{}, &out)

	var mre *errors.MalformedResponseError
	assert.ErrorAs(t, err, &mre)
}

func TestDoTransportError(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(jsonHandler(200, `{}`))
	serverURL := server.URL
	server.Close()

	client := New(Config{BaseURL: serverURL, APIKey: "k", Logger: logging.NewNopLogger()})
	err := client.Do(context.Background(), Endpoint{Method: "GET", Path: "/tags"}, Call{}, nil)
	require.Error(t, err)

	var te *errors.TransportError
	assert.ErrorAs(t, err, &te)
}

func TestDoOptionOverridesWin(t *testing.T) {
	client, recorded := newTestClient(t, jsonHandler(200, `{}`))

	ep := Endpoint{Method: "POST", Path: "/postings"}
	call := Call{
		Body: map[string]string{"text": "Engineer"},
		Options: []RequestOption{
			WithHeader("Authorization", "Bearer other-token"),
			WithHeader("Content-Type", "application/vnd.lever+json"),
		},
	}
	err := client.Do(context.Background(), ep, call, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer other-token", recorded.Header.Get("Authorization"))
	assert.Equal(t, "application/vnd.lever+json", recorded.Header.Get("Content-Type"))
}

func TestDoRepeatedCallsAreIndependent(t *testing.T) {
	count := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		count++
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	ep := Endpoint{Method: "GET", Path: "/stages"}
	var first, second map[string]any
	require.NoError(t, client.Do(context.Background(), ep, Call{}, &first))
	require.NoError(t, client.Do(context.Background(), ep, Call{}, &second))

	assert.Equal(t, 2, count, "no caching: each call issues its own request")
	assert.Equal(t, first, second)
}

func TestDoContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(200, `{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Do(ctx, Endpoint{Method: "GET", Path: "/tags"}, Call{}, nil)
	require.Error(t, err)

	var te *errors.TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoUserAgent(t *testing.T) {
	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Header = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := New(Config{
		BaseURL:   server.URL,
		APIKey:    "k",
		UserAgent: "lever-go/1.0",
		Logger:    logging.NewNopLogger(),
	})
	require.NoError(t, client.Do(context.Background(), Endpoint{Method: "GET", Path: "/tags"}, Call{}, nil))

	assert.Equal(t, "lever-go/1.0", recorded.Header.Get("User-Agent"))
}
