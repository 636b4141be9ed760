package mendix

import "sync"

// Watcher tracks the editor's active document through the host's
// change notifications, so finding lists can highlight the rows that
// belong to the document the developer is looking at.
type Watcher struct {
	mu          sync.Mutex
	current     ActiveDocument
	unsubscribe func()
}

// WatchActiveDocument subscribes to the host's active-document events and
// returns a Watcher reflecting the latest one. Close releases the
// subscription.
func WatchActiveDocument(notifier ActiveDocumentNotifier) *Watcher {
	w := &Watcher{}
	w.unsubscribe = notifier.OnActiveDocumentChanged(func(active ActiveDocument) {
		w.mu.Lock()
		w.current = active
		w.mu.Unlock()
	})
	return w
}

// Current returns the most recently reported active document. The zero
// value means no notification has arrived yet.
func (w *Watcher) Current() ActiveDocument {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Matches reports whether a finding's file path refers to the active
// document. Before any notification arrives, nothing matches.
func (w *Watcher) Matches(filePath string) bool {
	return w.Current().MatchesPath(filePath)
}

// Close cancels the host subscription. Safe to call more than once.
func (w *Watcher) Close() {
	w.mu.Lock()
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
