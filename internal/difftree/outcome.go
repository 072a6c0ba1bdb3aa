package difftree

import "github.com/sky-xo/treediff/internal/document"

// Outcome is the externally visible state of a comparison.
type Outcome int

const (
	// OutcomeInvalid means at least one side failed to parse; no diff is
	// attempted.
	OutcomeInvalid Outcome = iota
	// OutcomeEmpty means both documents are absent.
	OutcomeEmpty
	OutcomeIdentical
	OutcomeDifferent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeEmpty:
		return "empty"
	case OutcomeIdentical:
		return "identical"
	default:
		return "different"
	}
}

// Comparison bundles everything the rendering layer consumes: the diff root
// (nil unless a diff was produced), the summary counts and the per-side
// parse errors.
type Comparison struct {
	Outcome  Outcome
	Root     *DiffNode
	Summary  Summary
	LeftErr  string
	RightErr string
}

// Evaluate classifies a pair of parse results and, when both sides are
// usable, builds and compares their trees. Partial best-effort diffs over an
// invalid side are never produced.
func Evaluate(left, right document.Result) Comparison {
	if !left.Valid || !right.Valid {
		return Comparison{
			Outcome:  OutcomeInvalid,
			LeftErr:  left.Err,
			RightErr: right.Err,
		}
	}
	if left.Doc == nil && right.Doc == nil {
		return Comparison{Outcome: OutcomeEmpty}
	}

	root := Compare(BuildRoot(left.Doc), BuildRoot(right.Doc), "", 0)
	c := Comparison{
		Root:    root,
		Summary: Stats(root),
	}
	if root.Type == DiffUnchanged {
		c.Outcome = OutcomeIdentical
	} else {
		c.Outcome = OutcomeDifferent
	}
	return c
}
