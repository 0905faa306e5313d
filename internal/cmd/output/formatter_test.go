package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	err := f.Format(&buf, map[string]string{"id": "op1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"op1"}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	err := f.Format(&buf, map[string]string{"id": "op1"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "id: op1")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, Data{
		Headers: []string{"id", "name"},
		Rows: [][]string{
			{"op1", "Jane Doe"},
			{"op2", "John Smith"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "John Smith")
	// Headers are title-cased
	assert.Contains(t, out, "Id")
	assert.Contains(t, out, "Name")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, map[string]int{"count": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":3}`, buf.String())
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicitWins(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
}
