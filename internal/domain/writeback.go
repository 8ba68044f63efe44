package domain

// RevisionWritebackFields is the fixed allow-list of edited fields that get
// applied back onto the live project when a revision is created. Everything
// else is retained only in the revision snapshots.
var RevisionWritebackFields = []string{"name", "ministry", "agency", "budget"}

// RevisionWriteback carries the allow-listed field values extracted from an
// edited snapshot. Nil fields are left untouched on the live project.
type RevisionWriteback struct {
	Name     *string
	Ministry *string
	Agency   *string
	Budget   *float64
}
