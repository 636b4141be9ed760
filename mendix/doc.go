// Package mendix resolves analysis-tool file paths to documents in the
// Mendix Studio Pro project model.
//
// Studio Pro itself is reached only through the narrow ProjectModel
// capability interface; this package never owns or persists host state. The
// central problem it solves is that Sigrid reports repository file paths
// (e.g. "export-main/MyModule/pages/Home.page.xml") while Studio Pro
// identifies documents by name, owning module, and document type. The
// matcher combines the file name stem, the module names appearing in the
// path, and a document type inferred from well-known structural folder
// names to pick the one document a path refers to, or none when the
// evidence is ambiguous.
package mendix
