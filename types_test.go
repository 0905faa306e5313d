package lever

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte("1407460071043"), &ts))

	assert.Equal(t, int64(1407460071043), ts.Millis())
	assert.Equal(t, 2014, ts.Year())
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte("null"), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestampMarshal(t *testing.T) {
	ts := NewTimestamp(time.UnixMilli(1407460071043))
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1407460071043", string(data))
}

func TestTimestampMarshalZeroIsNull(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestTimestampRejectsNonInteger(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"2014-08-07"`), &ts))
}

func TestListResponseDecoding(t *testing.T) {
	payload := `{"data":[{"text":"infra","count":3}],"hasNext":false}`

	var page ListResponse[Tag]
	require.NoError(t, json.Unmarshal([]byte(payload), &page))

	require.Len(t, page.Data, 1)
	assert.Equal(t, "infra", page.Data[0].Text)
	assert.Equal(t, 3, page.Data[0].Count)
	assert.False(t, page.HasNext)
	assert.Empty(t, page.Next)
}

func TestResponseDecoding(t *testing.T) {
	payload := `{"data":{"id":"stage-1","text":"Phone Screen"}}`

	var resp Response[Stage]
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	assert.Equal(t, "Phone Screen", resp.Data.Text)
}

func TestOpportunityDecoding(t *testing.T) {
	payload := `{
		"id": "op1",
		"name": "Jane Doe",
		"archived": {"archivedAt": 1407460071043, "reason": "reason-1"},
		"stageChanges": [{"toStageId": "stage-2", "toStageIndex": 1, "updatedAt": 1407460071043, "userId": "u1"}],
		"createdAt": 1407459711043,
		"snoozedUntil": 1407462000000
	}`

	var opp Opportunity
	require.NoError(t, json.Unmarshal([]byte(payload), &opp))

	require.NotNil(t, opp.Archived)
	assert.Equal(t, "reason-1", opp.Archived.Reason)
	require.Len(t, opp.StageChanges, 1)
	assert.Equal(t, "stage-2", opp.StageChanges[0].ToStageID)
	require.NotNil(t, opp.SnoozedUntil)
	assert.Equal(t, int64(1407462000000), opp.SnoozedUntil.Millis())
}
