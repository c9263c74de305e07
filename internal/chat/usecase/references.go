package usecase

import "sort"

type refKind string

const (
	refProduct refKind = "product"
	refModel   refKind = "model"
	refTool    refKind = "tool"
)

// reference is a typed provenance tag. It only becomes a "kind:id" string at
// the envelope boundary, so the set can be rebuilt and deduplicated safely.
type reference struct {
	kind refKind
	id   string
}

func (r reference) String() string {
	return string(r.kind) + ":" + r.id
}

func productRef(partID string) reference { return reference{kind: refProduct, id: partID} }
func modelRef(modelID string) reference  { return reference{kind: refModel, id: modelID} }
func toolRef(name string) reference      { return reference{kind: refTool, id: name} }

// aggregateReferences merges whatever the model claimed with the references
// the pipeline actually observed, returning a sorted, deduplicated set. The
// result is stable regardless of input order, and re-aggregating its own
// output is a no-op.
func aggregateReferences(claimed []string, observed []reference) []string {
	set := make(map[string]struct{}, len(claimed)+len(observed))
	for _, c := range claimed {
		if c != "" {
			set[c] = struct{}{}
		}
	}
	for _, r := range observed {
		if r.id != "" {
			set[r.String()] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func refStrings(refs ...reference) []string {
	return aggregateReferences(nil, refs)
}
