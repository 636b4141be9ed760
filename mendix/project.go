package mendix

import "context"

// Module is a top-level module in the Studio Pro project.
type Module struct {
	ID   string
	Name string
}

// Folder is a document container nested under a module or another folder.
type Folder struct {
	ID string
}

// Document is a named document in the project model, read-only to this
// package. Type carries the host's document-type tag, e.g. "Pages$Page".
type Document struct {
	ID         string
	Name       string
	ModuleName string
	Type       string
}

// ActiveDocument identifies the document currently open in the editor, as
// delivered by the host's active-document subscription.
type ActiveDocument struct {
	DocumentName string
	ModuleName   string
}

// ProjectModel is the capability interface onto the Studio Pro project.
// Implementations wrap the host extension API; tests supply fakes. Every
// call can fail independently: containers may be unreadable under
// permission or transient errors, and callers are expected to skip them.
type ProjectModel interface {
	// Modules lists the project's top-level modules.
	Modules(ctx context.Context) ([]Module, error)

	// DocumentsIn lists the documents directly inside a container
	// (a module or folder), without recursing.
	DocumentsIn(ctx context.Context, containerID string) ([]Document, error)

	// FoldersIn lists the sub-folders directly inside a container.
	FoldersIn(ctx context.Context, containerID string) ([]Folder, error)

	// OpenDocument asks the host to open the document in an editor.
	OpenDocument(ctx context.Context, documentID string) error
}

// ActiveDocumentNotifier is the optional host capability for observing
// editor focus changes. Hosts that support it deliver every change to the
// registered callback; the returned function cancels the subscription.
type ActiveDocumentNotifier interface {
	OnActiveDocumentChanged(callback func(ActiveDocument)) (unsubscribe func())
}
