// label_fn.go — label normalisation functions applied to every record label
// before validation.

package builder

import "strings"

// LabelFn maps a raw label to its canonical form.
// It must be pure and deterministic: equal inputs give equal outputs, which
// keeps ingestion order-independent.
type LabelFn func(label string) string

// IdentityLabel returns the label unchanged. It is the default LabelFn.
func IdentityLabel(label string) string { return label }

// TrimSpaceLabel strips leading and trailing white space.
func TrimSpaceLabel(label string) string { return strings.TrimSpace(label) }

// UpperLabel upper-cases the label.
func UpperLabel(label string) string { return strings.ToUpper(label) }

// PrefixLabel returns a LabelFn that qualifies labels with prefix, leaving
// already-qualified and empty labels alone. Example: PrefixLabel("PODCASTSERIES_")
// maps "COMEDY" to "PODCASTSERIES_COMEDY".
func PrefixLabel(prefix string) LabelFn {
	return func(label string) string {
		if label == "" || strings.HasPrefix(label, prefix) {
			return label
		}
		return prefix + label
	}
}

// ChainLabel composes fns left to right. Nil entries are skipped.
func ChainLabel(fns ...LabelFn) LabelFn {
	return func(label string) string {
		for _, fn := range fns {
			if fn != nil {
				label = fn(label)
			}
		}
		return label
	}
}
