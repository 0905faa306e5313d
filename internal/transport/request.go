package transport

import (
	"net/http"
	"net/url"
	"strconv"
)

// Query maps query parameter names to primitive values. Entries with a
// nil value are dropped during encoding, so option structs can pass
// optional parameters without filtering first.
type Query map[string]any

// Encode serializes the query as a standard percent-encoded query
// string with keys in sorted order. An empty or all-nil query encodes
// to the empty string.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range q {
		if value == nil {
			continue
		}
		// A slice value repeats the key once per element.
		if list, ok := value.([]string); ok {
			for _, item := range list {
				values.Add(key, item)
			}
			continue
		}
		values.Add(key, stringify(value))
	}
	return values.Encode()
}

// stringify converts a primitive query value to its string form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		if s, ok := value.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}

// RequestOption mutates the assembled *http.Request just before it is
// sent. Options run after all computed defaults, so a caller-supplied
// header, method, or body wins on collision. That clobbering is
// deliberate caller-override behavior, not an error path.
type RequestOption func(*http.Request)

// WithHeader returns an option that sets (replacing, not appending) a
// request header. It can override any default, including Authorization
// and Content-Type.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithQueryValue returns an option that adds a single query parameter
// to the assembled URL.
func WithQueryValue(key, value string) RequestOption {
	return func(req *http.Request) {
		if req.URL == nil {
			return
		}
		query := req.URL.Query()
		query.Set(key, value)
		req.URL.RawQuery = query.Encode()
	}
}

// Call carries the per-invocation payload for one endpoint execution.
// A Call is built fresh per request and discarded afterwards.
type Call struct {
	Params  Params
	Query   Query
	Body    any
	Options []RequestOption
}
