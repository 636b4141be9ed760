package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeJSON parses raw JSON into the generic any shape the normalizer
// consumes, exactly as the fetch layer produces it.
func decodeJSON(t *testing.T, raw string) any {
	t.Helper()
	var value any
	require.NoError(t, json.Unmarshal([]byte(raw), &value))
	return value
}

func TestMapSecurityFinding(t *testing.T) {
	t.Run("fully populated entry", func(t *testing.T) {
		input := decodeJSON(t, `{
			"id": "f-1",
			"title": "SQL injection in login",
			"type": "injection",
			"status": "RAW",
			"severity": "HIGH",
			"cweId": "CWE-89",
			"owaspCategory": "A03 Injection",
			"filePath": "src\\main\\LoginService.java",
			"lineNumber": 42,
			"lastSeenSnapshotDate": "2025-06-01",
			"references": [
				{"title": "CWE-89", "url": "https://cwe.mitre.org/89", "type": "cwe"},
				{"bogus": true}
			]
		}`)

		finding := MapSecurityFinding(input)
		require.NotNil(t, finding)
		assert.Equal(t, "f-1", finding.ID)
		assert.Equal(t, "SQL injection in login", finding.Name)
		assert.Equal(t, "injection", finding.Type)
		assert.Equal(t, "RAW", finding.Status)
		assert.Equal(t, "HIGH", finding.Severity)
		assert.Equal(t, "CWE-89", finding.CweID)
		assert.Equal(t, "A03 Injection", finding.OwaspCategory)
		assert.Equal(t, "src\\main\\LoginService.java", finding.FilePath)
		assert.Equal(t, ".../LoginService.java", finding.DisplayFilePath)
		require.NotNil(t, finding.LineNumber)
		assert.Equal(t, 42, *finding.LineNumber)
		require.Len(t, finding.References, 1)
		assert.Equal(t, "CWE-89", finding.References[0].Title)
	})

	t.Run("aliased keys", func(t *testing.T) {
		finding := MapSecurityFinding(decodeJSON(t, `{
			"findingId": "f-2",
			"name": "XSS",
			"cwe": "CWE-79",
			"top10Category": "A07",
			"path": "web/form.jsp",
			"snapshotDate": "2025-05-01"
		}`))
		require.NotNil(t, finding)
		assert.Equal(t, "f-2", finding.ID)
		assert.Equal(t, "XSS", finding.Name)
		assert.Equal(t, "CWE-79", finding.CweID)
		assert.Equal(t, "A07", finding.Category)
		assert.Equal(t, "web/form.jsp", finding.FilePath)
		assert.Equal(t, "2025-05-01", finding.LastSeenSnapshotDate)
	})

	t.Run("entry without id is dropped", func(t *testing.T) {
		assert.Nil(t, MapSecurityFinding(decodeJSON(t, `{"name": "orphan"}`)))
	})

	t.Run("non-object inputs", func(t *testing.T) {
		assert.Nil(t, MapSecurityFinding(nil))
		assert.Nil(t, MapSecurityFinding("finding"))
		assert.Nil(t, MapSecurityFinding(7.0))
	})

	t.Run("defaults applied", func(t *testing.T) {
		finding := MapSecurityFinding(decodeJSON(t, `{"id": "f-3"}`))
		require.NotNil(t, finding)
		assert.Equal(t, "f-3", finding.Name)
		assert.Equal(t, "UNKNOWN", finding.Status)
		assert.Empty(t, finding.References)
		assert.Nil(t, finding.LineNumber)
	})
}

func TestMapSecurityFindings(t *testing.T) {
	t.Run("malformed entries dropped", func(t *testing.T) {
		findings := MapSecurityFindings(decodeJSON(t, `[
			{"id": "a"},
			{"no": "id"},
			"junk",
			{"id": "b"}
		]`))
		require.Len(t, findings, 2)
		assert.Equal(t, "a", findings[0].ID)
		assert.Equal(t, "b", findings[1].ID)
	})

	t.Run("non-array payload", func(t *testing.T) {
		assert.Empty(t, MapSecurityFindings(nil))
		assert.Empty(t, MapSecurityFindings(decodeJSON(t, `{"error": "nope"}`)))
	})
}

func TestSecurityFindingCacheRoundTrip(t *testing.T) {
	original := MapSecurityFindings(decodeJSON(t, `[{
		"id": "f-1",
		"title": "Hardcoded credential",
		"type": "secret",
		"status": "RAW",
		"severity": "MEDIUM",
		"filePath": "app/Config.java",
		"lineNumber": 10,
		"lastSeenSnapshotDate": "2025-06-01",
		"references": [{"url": "https://example.com"}]
	}, {
		"id": "f-2"
	}]`))
	require.Len(t, original, 2)
	assert.Equal(t, "f-2", original[1].Name)
	assert.Empty(t, original[1].Type)

	serialized, err := json.Marshal(original)
	require.NoError(t, err)

	restored := DecodeSecurityFindings(decodeJSON(t, string(serialized)))
	assert.Equal(t, original, restored)
}

func TestDecodeSecurityFindingsAppliesNoAliases(t *testing.T) {
	// A cached finding persisted without a type must restore without one;
	// the API mapper's type-from-name fallback must not fire here.
	restored := DecodeSecurityFindings(decodeJSON(t, `[{
		"id": "f-1",
		"name": "Weak cipher",
		"status": "RAW"
	}]`))
	require.Len(t, restored, 1)
	assert.Equal(t, "Weak cipher", restored[0].Name)
	assert.Empty(t, restored[0].Type)

	t.Run("malformed entries dropped", func(t *testing.T) {
		restored := DecodeSecurityFindings(decodeJSON(t, `[{"id": "a"}, "junk", {"no": "id"}]`))
		require.Len(t, restored, 1)
		assert.Equal(t, "a", restored[0].ID)
	})
}
