package models

// SyncSummary reports what a single collection pass did.
type SyncSummary struct {
	// Collection is the collection this summary describes.
	Collection string

	// Pages is the number of successful page fetches in the pass.
	Pages int

	// Records is the total number of records handed to the applier,
	// including any re-delivered after a conflict.
	Records int

	// Conflicts is the number of server precondition failures the pass
	// recovered from by falling back to the timestamp cursor.
	Conflicts int

	// Unchanged is true when the pass short-circuited because the
	// collection reported no change since the last completed pass.
	Unchanged bool
}
