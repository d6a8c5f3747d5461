// constants.go — shared constants used by the record builder.

package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodAdd is the canonical name for single-record ingestion.
	MethodAdd = "Add"
	// MethodIngest is the canonical name for batch ingestion.
	MethodIngest = "Ingest"
	// MethodIngestStream is the canonical name for channel ingestion.
	MethodIngestStream = "IngestStream"
)

//-----------------------------------------------------------------------------
// Invalid-record policies
//-----------------------------------------------------------------------------

// Policy selects what happens to a record that fails validation.
type Policy int

const (
	// PolicySkip drops the offending record, logs it and keeps going.
	PolicySkip Policy = iota
	// PolicyAbort rejects the whole batch on the first offending record.
	PolicyAbort
)

// String returns the config spelling of the policy ("skip" / "abort").
func (p Policy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// ParsePolicy maps "skip" / "abort" to a Policy. ok is false otherwise.
func ParsePolicy(s string) (p Policy, ok bool) {
	switch s {
	case "skip":
		return PolicySkip, true
	case "abort":
		return PolicyAbort, true
	default:
		return PolicySkip, false
	}
}

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultWorkers is the number of ingestion workers when WithWorkers is unset.
const DefaultWorkers = 1

// MaxWorkers bounds WithWorkers.
const MaxWorkers = 64

// minShardSize is the smallest batch slice worth handing to its own worker.
const minShardSize = 64
