package builder

import "fmt"

// Record is one source item with its category labels. Only Labels feed the
// graph; Title and Country are carried for logging and reporting.
type Record struct {
	Title   string
	Labels  []string
	Country string
}

// prepared is a validated record: normalised, de-duplicated labels.
type prepared struct {
	labels []string
}

// pairs returns the number of unordered pairs the record contributes.
func (p prepared) pairs() int {
	n := len(p.labels)
	return n * (n - 1) / 2
}

// prepare normalises and validates rec. Duplicate labels are collapsed,
// keeping first-occurrence order.
//
// Errors:
//   - ErrEmptyLabel: a label is empty after normalisation.
func prepare(rec Record, labelFn LabelFn) (prepared, error) {
	if len(rec.Labels) == 0 {
		return prepared{}, nil
	}
	seen := make(map[string]struct{}, len(rec.Labels))
	out := make([]string, 0, len(rec.Labels))
	for i, raw := range rec.Labels {
		label := labelFn(raw)
		if label == "" {
			return prepared{}, fmt.Errorf("%w at position %d", ErrEmptyLabel, i)
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	return prepared{labels: out}, nil
}
