package model

import "strings"

// Property-bag keys used by the Sigrid SBOM export. Extension metadata that
// CycloneDX does not model as first-class fields travels in {name, value}
// properties under these names.
const (
	propRiskVulnerability = "sigrid:risk:vulnerability"
	propRiskLegal         = "sigrid:risk:legal"
	propRiskFreshness     = "sigrid:risk:freshness"
	propRiskActivity      = "sigrid:risk:activity"
	propRiskStability     = "sigrid:risk:stability"
	propRiskManagement    = "sigrid:risk:management"

	propFreshnessStatus   = "sigrid:freshness:status"
	propLibraryFreshness  = "sigrid:library:freshness"
	propReleaseDate       = "sigrid:releaseDate"
	propNextVersion       = "sigrid:next:version"
	propNextReleaseDate   = "sigrid:next:releaseDate"
	propLatestVersion     = "sigrid:latest:version"
	propLatestReleaseDate = "sigrid:latest:releaseDate"
	propTransitive        = "sigrid:transitive"
	propStatus            = "sigrid:status"

	propExportDate          = "sigrid:exportDate"
	propSystemRating        = "sigrid:ratings:system"
	propVulnerabilityRating = "sigrid:ratings:vulnerability"
	propLicenseRating       = "sigrid:ratings:licenses"
	propFreshnessRating     = "sigrid:ratings:freshness"
	propManagementRating    = "sigrid:ratings:management"
	propActivityRating      = "sigrid:ratings:activity"
)

// License identifies a license attached to an open-source component.
type License struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Vulnerability is a known vulnerability reported against a component.
type Vulnerability struct {
	ID       string `json:"id,omitempty"`
	Source   string `json:"source,omitempty"`
	Severity string `json:"severity,omitempty"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
}

// OshDependency is a third-party component from the open-source health SBOM,
// normalized for display. The six individual risk fields default to
// NotAvailable when the export carries no value; Risk is the derived overall
// level, the highest severity among the individual risks.
type OshDependency struct {
	Name              string          `json:"name"`
	Version           string          `json:"version"`
	Type              string          `json:"type,omitempty"`
	DependencyType    string          `json:"dependencyType,omitempty"`
	Status            string          `json:"status,omitempty"`
	Supplier          string          `json:"supplier,omitempty"`
	Group             string          `json:"group,omitempty"`
	Purl              string          `json:"purl,omitempty"`
	Licenses          []License       `json:"licenses"`
	VulnerabilityRisk string          `json:"vulnerabilityRisk"`
	LicenseRisk       string          `json:"licenseRisk"`
	FreshnessRisk     string          `json:"freshnessRisk"`
	ActivityRisk      string          `json:"activityRisk"`
	StabilityRisk     string          `json:"stabilityRisk"`
	ManagementRisk    string          `json:"managementRisk"`
	LibraryFreshness  string          `json:"libraryFreshness,omitempty"`
	Risk              string          `json:"risk,omitempty"`
	ReleaseDate       string          `json:"releaseDate,omitempty"`
	NextVersion       string          `json:"nextVersion,omitempty"`
	NextReleaseDate   string          `json:"nextReleaseDate,omitempty"`
	LatestVersion     string          `json:"latestVersion,omitempty"`
	LatestReleaseDate string          `json:"latestReleaseDate,omitempty"`
	Transitive        string          `json:"transitive,omitempty"`
	Vulnerabilities   []Vulnerability `json:"vulnerabilities"`
}

// OshMetadata carries the aggregate open-source health ratings from the SBOM
// properties. A nil OshMetadata means the export carried none of them.
type OshMetadata struct {
	ExportDate          string `json:"exportDate,omitempty"`
	SystemRating        string `json:"systemRating,omitempty"`
	VulnerabilityRating string `json:"vulnerabilityRating,omitempty"`
	LicenseRating       string `json:"licenseRating,omitempty"`
	FreshnessRating     string `json:"freshnessRating,omitempty"`
	ManagementRating    string `json:"managementRating,omitempty"`
	ActivityRating      string `json:"activityRating,omitempty"`
}

func (m *OshMetadata) isEmpty() bool {
	return m.ExportDate == "" && m.SystemRating == "" && m.VulnerabilityRating == "" &&
		m.LicenseRating == "" && m.FreshnessRating == "" && m.ManagementRating == "" &&
		m.ActivityRating == ""
}

// MapOshDependency normalizes one decoded SBOM component. Risk fields are
// read from the sigrid property bag first, then from flat fields (the shape
// the local cache persists), then default to NotAvailable.
func MapOshDependency(input any) *OshDependency {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	props := BuildPropertyLookup(data["properties"])
	lookup := func(bagKeys []string, flatKeys ...string) string {
		for _, key := range bagKeys {
			if v, ok := props[key]; ok {
				return v
			}
		}
		s, _ := stringField(data, flatKeys...)
		return s
	}

	vulnerabilityRisk := lookup([]string{propRiskVulnerability}, "vulnerabilityRisk")
	licenseRisk := lookup([]string{propRiskLegal}, "licenseRisk")
	freshnessRisk := lookup([]string{propRiskFreshness}, "freshnessRisk")
	activityRisk := lookup([]string{propRiskActivity}, "activityRisk")
	stabilityRisk := lookup([]string{propRiskStability}, "stabilityRisk")
	managementRisk := lookup([]string{propRiskManagement}, "managementRisk")

	riskFromComponent, _ := stringField(data, "risk")

	dep := OshDependency{
		Name:    stringFieldOr(data, "Unnamed component", "name"),
		Version: stringFieldOr(data, NotAvailable, "version"),
		Licenses: MapArray(data["licenses"], mapLicense),
		Vulnerabilities: MapArray(data["vulnerabilities"], mapVulnerability),

		VulnerabilityRisk: orNotAvailable(vulnerabilityRisk),
		LicenseRisk:       orNotAvailable(licenseRisk),
		FreshnessRisk:     orNotAvailable(freshnessRisk),
		ActivityRisk:      orNotAvailable(activityRisk),
		StabilityRisk:     orNotAvailable(stabilityRisk),
		ManagementRisk:    orNotAvailable(managementRisk),

		LibraryFreshness: lookup(
			[]string{propFreshnessStatus, propLibraryFreshness, propLatestReleaseDate, propReleaseDate},
			"libraryFreshness"),
		Risk: HighestRisk(withoutNotAvailable(
			riskFromComponent,
			vulnerabilityRisk,
			licenseRisk,
			managementRisk,
			activityRisk,
			stabilityRisk,
			freshnessRisk,
		)),
		ReleaseDate:       lookup([]string{propReleaseDate}, "releaseDate"),
		NextVersion:       lookup([]string{propNextVersion}, "nextVersion"),
		NextReleaseDate:   lookup([]string{propNextReleaseDate}, "nextReleaseDate"),
		LatestVersion:     lookup([]string{propLatestVersion}, "latestVersion"),
		LatestReleaseDate: lookup([]string{propLatestReleaseDate}, "latestReleaseDate"),
		Transitive:        lookup([]string{propTransitive}, "transitive"),
		DependencyType:    lookup([]string{propTransitive}, "scope", "dependencyType"),
		Status:            lookup([]string{propStatus}, "status"),
	}
	dep.Type, _ = stringField(data, "type")
	dep.Supplier, _ = stringField(data, "supplier", "supplierName")
	dep.Group, _ = stringField(data, "group")
	dep.Purl, _ = stringField(data, "purl")

	return &dep
}

// MapOshDependencies normalizes a decoded array of SBOM components.
func MapOshDependencies(input any) []OshDependency {
	return MapArray(input, MapOshDependency)
}

// MapOshMetadata extracts the aggregate ratings from an SBOM property bag.
// exportDate, when present as a first-class field on the payload, wins over
// the property-bag value. Returns nil when no field is present.
func MapOshMetadata(properties any, exportDate any) *OshMetadata {
	props := BuildPropertyLookup(properties)

	meta := OshMetadata{
		SystemRating:        props[propSystemRating],
		VulnerabilityRating: props[propVulnerabilityRating],
		LicenseRating:       props[propLicenseRating],
		FreshnessRating:     props[propFreshnessRating],
		ManagementRating:    props[propManagementRating],
		ActivityRating:      props[propActivityRating],
	}
	if s, ok := AsString(exportDate); ok {
		meta.ExportDate = s
	} else {
		meta.ExportDate = props[propExportDate]
	}

	if meta.isEmpty() {
		return nil
	}
	return &meta
}

// DecodeOshMetadata restores metadata from its flat cached shape.
func DecodeOshMetadata(input any) *OshMetadata {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	var meta OshMetadata
	meta.ExportDate, _ = stringField(data, "exportDate")
	meta.SystemRating, _ = stringField(data, "systemRating")
	meta.VulnerabilityRating, _ = stringField(data, "vulnerabilityRating")
	meta.LicenseRating, _ = stringField(data, "licenseRating")
	meta.FreshnessRating, _ = stringField(data, "freshnessRating")
	meta.ManagementRating, _ = stringField(data, "managementRating")
	meta.ActivityRating, _ = stringField(data, "activityRating")

	if meta.isEmpty() {
		return nil
	}
	return &meta
}

// NormalizeOshPayload accepts the osh-findings response in either of its two
// shapes (a bare SBOM object or an {sbom: ...} wrapper) and returns the
// normalized dependencies plus the aggregate metadata.
func NormalizeOshPayload(payload any) ([]OshDependency, *OshMetadata) {
	data, ok := asObject(payload)
	if !ok {
		return []OshDependency{}, nil
	}

	sbom := data
	if wrapped, ok := asObject(data["sbom"]); ok {
		sbom = wrapped
	}

	deps := MapOshDependencies(sbom["components"])

	properties := sbom["properties"]
	if properties == nil {
		properties = data["properties"]
	}
	exportDate := data["exportDate"]
	if exportDate == nil {
		exportDate = sbom["exportDate"]
	}

	return deps, MapOshMetadata(properties, exportDate)
}

// withoutNotAvailable drops the "N/A" placeholder from risk aggregation
// input: only real levels may contribute to the derived overall risk.
func withoutNotAvailable(values ...string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if !strings.EqualFold(strings.TrimSpace(value), NotAvailable) {
			result = append(result, value)
		}
	}
	return result
}

func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}
	return value
}

func mapLicense(input any) *License {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	var lic License
	lic.ID, _ = stringField(data, "id", "licenseId")
	lic.Name, _ = stringField(data, "name")
	lic.URL, _ = stringField(data, "url")

	if lic.ID == "" && lic.Name == "" && lic.URL == "" {
		return nil
	}
	return &lic
}

func mapVulnerability(input any) *Vulnerability {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	var vuln Vulnerability
	vuln.ID, _ = stringField(data, "id", "vulnerabilityId")
	vuln.Title, _ = stringField(data, "title", "description")
	vuln.URL, _ = stringField(data, "url")

	if vuln.ID == "" && vuln.Title == "" && vuln.URL == "" {
		return nil
	}
	vuln.Source, _ = stringField(data, "source")
	vuln.Severity, _ = stringField(data, "severity", "rating")
	return &vuln
}
