package lever

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunitiesList(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{
		"data": [
			{"id": "op1", "name": "Jane Doe", "stage": "stage-1", "tags": ["infra"]},
			{"id": "op2", "name": "John Smith", "stage": "stage-2"}
		],
		"hasNext": true,
		"next": "cursor-abc"
	}`)

	archived := false
	page, err := client.Opportunities.List(context.Background(), &OpportunityListOptions{
		Limit:    50,
		StageID:  "stage-1",
		Archived: &archived,
		Expand:   []string{"applications", "stage"},
	})
	require.NoError(t, err)

	assert.Equal(t, "GET", recorded.Method)
	assert.Equal(t, "/opportunities", recorded.Path)

	values, err := url.ParseQuery(recorded.Query)
	require.NoError(t, err)
	assert.Equal(t, "50", values.Get("limit"))
	assert.Equal(t, "stage-1", values.Get("stage_id"))
	assert.Equal(t, "false", values.Get("archived"))
	assert.ElementsMatch(t, []string{"applications", "stage"}, values["expand"])

	require.Len(t, page.Data, 2)
	assert.Equal(t, "op1", page.Data[0].ID)
	assert.Equal(t, []string{"infra"}, page.Data[0].Tags)
	assert.True(t, page.HasNext)
	assert.Equal(t, "cursor-abc", page.Next)
}

func TestOpportunitiesListTimeRange(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{"data":[]}`)

	start := NewTimestamp(time.UnixMilli(1407460071043))
	_, err := client.Opportunities.List(context.Background(), &OpportunityListOptions{
		CreatedAtStart: &start,
	})
	require.NoError(t, err)

	assert.Equal(t, "created_at_start=1407460071043", recorded.Query)
}

func TestOpportunitiesGetEscapesID(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{"data":{"id":"abc 123"}}`)

	opp, err := client.Opportunities.Get(context.Background(), "abc 123")
	require.NoError(t, err)

	assert.Equal(t, "abc 123", opp.ID)
	// httptest reports the decoded path; the raw request line carried %20
	assert.Equal(t, "/opportunities/abc 123", recorded.Path)
}

func TestOpportunitiesAddTags(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{"data":{"id":"op1"}}`)

	err := client.Opportunities.AddTags(context.Background(), "op1", []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "/opportunities/op1/addTags", recorded.Path)
	assert.Equal(t, "application/json", recorded.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"tags":["a","b"]}`, string(recorded.Body))
}

func TestOpportunitiesRemoveSources(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{}`)

	err := client.Opportunities.RemoveSources(context.Background(), "op1", []string{"referral"})
	require.NoError(t, err)

	assert.Equal(t, "/opportunities/op1/removeSources", recorded.Path)
	assert.JSONEq(t, `{"sources":["referral"]}`, string(recorded.Body))
}

func TestOpportunitiesUpdateStage(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{}`)

	err := client.Opportunities.UpdateStage(context.Background(), "op1", "stage-9")
	require.NoError(t, err)

	assert.Equal(t, "PUT", recorded.Method)
	assert.Equal(t, "/opportunities/op1/stage", recorded.Path)
	assert.JSONEq(t, `{"stage":"stage-9"}`, string(recorded.Body))
}

func TestOpportunitiesUpdateArchived(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{}`)

	err := client.Opportunities.UpdateArchived(context.Background(), "op1", "reason-1")
	require.NoError(t, err)

	assert.Equal(t, "PUT", recorded.Method)
	assert.Equal(t, "/opportunities/op1/archived", recorded.Path)
	assert.JSONEq(t, `{"reason":"reason-1"}`, string(recorded.Body))
}

func TestOpportunitiesUnarchive(t *testing.T) {
	client, recorded := newTestClient(t, 200, `{}`)

	err := client.Opportunities.UpdateArchived(context.Background(), "op1", "")
	require.NoError(t, err)

	assert.JSONEq(t, `{"reason":null}`, string(recorded.Body))
}

func TestOpportunitiesCreate(t *testing.T) {
	client, recorded := newTestClient(t, 201, `{"data":{"id":"op-new","name":"Jane Doe"}}`)

	opp, err := client.Opportunities.Create(context.Background(), &OpportunityCreate{
		Name:   "Jane Doe",
		Emails: []string{"jane@example.com"},
		Tags:   []string{"infra"},
	}, PerformAs("user-1"))
	require.NoError(t, err)

	assert.Equal(t, "op-new", opp.ID)
	assert.Equal(t, "POST", recorded.Method)
	assert.Contains(t, recorded.Query, "perform_as=user-1")
	assert.JSONEq(t, `{"name":"Jane Doe","emails":["jane@example.com"],"tags":["infra"]}`, string(recorded.Body))
}
