// Package sigridpanel provides the core of the Sigrid panel extension for
// Mendix Studio Pro.
//
// The package assembles the pieces a host extension needs to show Sigrid
// analysis results next to the model the developer is editing: an API client
// for the Sigrid analysis-results REST endpoints, a store that normalizes
// the tolerant JSON payloads into display models and persists them to a
// local cache, and a navigator that resolves finding file paths to project
// documents and opens them in the editor.
//
// # Core Concepts
//
//   - Settings: the Sigrid token, customer, and system identifying one
//     analyzed system. Customer and system are lowercased before use.
//   - Snapshot: an immutable view of the store's state (findings,
//     dependencies, refactoring candidates, analysis date, loading flag,
//     error message) delivered to subscribers after every change.
//   - Navigator: maps a finding's repository file path onto the project's
//     document tree and opens the best match.
//
// # Getting Started
//
// Assemble a panel and hydrate it from the persisted cache:
//
//	panel, err := sigridpanel.New(
//		sigridpanel.WithConfigPath("sigrid-panel.yaml"),
//		sigridpanel.WithProjectModel(hostProject),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer panel.Close()
//
//	st := panel.Store()
//	unsubscribe := st.Subscribe(func(snap store.Snapshot) {
//		render(snap)
//	})
//	defer unsubscribe()
//
//	st.LoadSettingsFromStorage(ctx)
//	st.LoadAllData(ctx, store.LoadOptions{})
//
// # Navigation
//
// Clicking a finding in the rendered panel hands its file path to the
// panel, which resolves it against the project and opens the document:
//
//	if err := panel.OpenFinding(ctx, finding.FilePath); err != nil {
//		logger.Warn("navigation failed", "error", err)
//	}
//
// Paths that resolve to no document are a silent no-op, matching the
// behavior of the panel UI where such rows are simply not clickable.
//
// # Subpackages
//
//   - api: read-only client for the Sigrid analysis-results REST API
//   - model: tolerant JSON normalization into display models
//   - store: state container, data loading, and cache persistence
//   - storage: file and redis cache backends
//   - mendix: project document enumeration, path matching, navigation
//   - pathutil: repository path normalization helpers
//   - config: YAML configuration for endpoint and cache backend
package sigridpanel
