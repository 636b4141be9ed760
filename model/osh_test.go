package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleComponent = `{
	"name": "commons-collections",
	"version": "3.2.1",
	"purl": "pkg:maven/commons-collections/commons-collections@3.2.1",
	"licenses": [
		{"id": "Apache-2.0", "url": "https://www.apache.org/licenses/LICENSE-2.0"},
		{"bogus": 1}
	],
	"vulnerabilities": [
		{"id": "CVE-2015-6420", "severity": "critical", "source": "NVD"}
	],
	"properties": [
		{"name": "sigrid:risk:vulnerability", "value": "critical"},
		{"name": "sigrid:risk:legal", "value": "low"},
		{"name": "sigrid:risk:freshness", "value": "medium"},
		{"name": "sigrid:transitive", "value": "direct"},
		{"name": "sigrid:latest:version", "value": "4.5.0"}
	]
}`

func TestMapOshDependency(t *testing.T) {
	t.Run("risk fields from property bag", func(t *testing.T) {
		dep := MapOshDependency(decodeJSON(t, sampleComponent))
		require.NotNil(t, dep)
		assert.Equal(t, "commons-collections", dep.Name)
		assert.Equal(t, "3.2.1", dep.Version)
		assert.Equal(t, "critical", dep.VulnerabilityRisk)
		assert.Equal(t, "low", dep.LicenseRisk)
		assert.Equal(t, "medium", dep.FreshnessRisk)
		assert.Equal(t, NotAvailable, dep.ActivityRisk)
		assert.Equal(t, NotAvailable, dep.StabilityRisk)
		assert.Equal(t, NotAvailable, dep.ManagementRisk)
		assert.Equal(t, "critical", dep.Risk)
		assert.Equal(t, "direct", dep.Transitive)
		assert.Equal(t, "direct", dep.DependencyType)
		assert.Equal(t, "4.5.0", dep.LatestVersion)
		require.Len(t, dep.Licenses, 1)
		assert.Equal(t, "Apache-2.0", dep.Licenses[0].ID)
		require.Len(t, dep.Vulnerabilities, 1)
		assert.Equal(t, "CVE-2015-6420", dep.Vulnerabilities[0].ID)
	})

	t.Run("defaults for empty component", func(t *testing.T) {
		dep := MapOshDependency(decodeJSON(t, `{}`))
		require.NotNil(t, dep)
		assert.Equal(t, "Unnamed component", dep.Name)
		assert.Equal(t, NotAvailable, dep.Version)
		assert.Equal(t, NotAvailable, dep.VulnerabilityRisk)
		assert.Equal(t, "", dep.Risk)
		assert.Empty(t, dep.Licenses)
		assert.Empty(t, dep.Vulnerabilities)
	})

	t.Run("non-object input", func(t *testing.T) {
		assert.Nil(t, MapOshDependency(nil))
		assert.Nil(t, MapOshDependency([]any{}))
	})

	t.Run("risk derived across mixed sources", func(t *testing.T) {
		dep := MapOshDependency(decodeJSON(t, `{
			"name": "x",
			"risk": "low",
			"properties": [{"name": "sigrid:risk:freshness", "value": "HIGH"}]
		}`))
		require.NotNil(t, dep)
		assert.Equal(t, "HIGH", dep.Risk)
	})
}

func TestMapOshMetadata(t *testing.T) {
	t.Run("ratings from bag with explicit export date", func(t *testing.T) {
		meta := MapOshMetadata(decodeJSON(t, `[
			{"name": "sigrid:ratings:system", "value": "3.5"},
			{"name": "sigrid:exportDate", "value": "2025-01-01"}
		]`), "2025-02-02")
		require.NotNil(t, meta)
		assert.Equal(t, "3.5", meta.SystemRating)
		assert.Equal(t, "2025-02-02", meta.ExportDate)
	})

	t.Run("export date falls back to bag", func(t *testing.T) {
		meta := MapOshMetadata(decodeJSON(t, `[
			{"name": "sigrid:exportDate", "value": "2025-01-01"}
		]`), nil)
		require.NotNil(t, meta)
		assert.Equal(t, "2025-01-01", meta.ExportDate)
	})

	t.Run("nil when nothing present", func(t *testing.T) {
		assert.Nil(t, MapOshMetadata(nil, nil))
		assert.Nil(t, MapOshMetadata([]any{}, "  "))
	})
}

func TestNormalizeOshPayload(t *testing.T) {
	t.Run("bare sbom", func(t *testing.T) {
		payload := decodeJSON(t, `{
			"components": [`+sampleComponent+`],
			"properties": [{"name": "sigrid:ratings:system", "value": "4.0"}],
			"exportDate": "2025-03-03"
		}`)
		deps, meta := NormalizeOshPayload(payload)
		require.Len(t, deps, 1)
		require.NotNil(t, meta)
		assert.Equal(t, "4.0", meta.SystemRating)
		assert.Equal(t, "2025-03-03", meta.ExportDate)
	})

	t.Run("wrapped sbom", func(t *testing.T) {
		payload := decodeJSON(t, `{"sbom": {
			"components": [`+sampleComponent+`],
			"properties": [{"name": "sigrid:ratings:system", "value": "4.0"}]
		}}`)
		deps, meta := NormalizeOshPayload(payload)
		require.Len(t, deps, 1)
		require.NotNil(t, meta)
		assert.Equal(t, "4.0", meta.SystemRating)
	})

	t.Run("malformed payload", func(t *testing.T) {
		deps, meta := NormalizeOshPayload(nil)
		assert.Empty(t, deps)
		assert.Nil(t, meta)
	})
}

func TestOshCacheRoundTrip(t *testing.T) {
	deps, meta := NormalizeOshPayload(decodeJSON(t, `{
		"components": [`+sampleComponent+`],
		"properties": [{"name": "sigrid:ratings:system", "value": "4.0"}],
		"exportDate": "2025-03-03"
	}`))
	require.Len(t, deps, 1)
	require.NotNil(t, meta)

	serializedDeps, err := json.Marshal(deps)
	require.NoError(t, err)
	restoredDeps := MapOshDependencies(decodeJSON(t, string(serializedDeps)))
	assert.Equal(t, deps, restoredDeps)

	serializedMeta, err := json.Marshal(meta)
	require.NoError(t, err)
	restoredMeta := DecodeOshMetadata(decodeJSON(t, string(serializedMeta)))
	assert.Equal(t, meta, restoredMeta)
}
