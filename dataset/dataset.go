package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/genremap/builder"
)

// ErrBadDocument is returned when the file is not a JSON array.
var ErrBadDocument = errors.New("dataset: document is not a JSON array")

var errNullGenre = errors.New("null genre")

// Report counts what Decode did with each element.
type Report struct {
	Total     int // array elements
	Loaded    int // returned as records
	Skipped   int // elements without genres
	Malformed int // elements that are not well-formed records
}

// entry is the on-disk shape of one element.
type entry struct {
	Title   string          `json:"title"`
	Genres  json.RawMessage `json:"genres"`
	Country string          `json:"country"`
}

// Decode reads a record array from r. A nil log is treated as zap.NewNop().
//
// Errors:
//   - ErrBadDocument if the input is not exactly one JSON array.
//   - read errors from r.
func Decode(r io.Reader, log *zap.Logger) ([]builder.Record, Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var rep Report
	raw, err := readArray(r)
	if err != nil {
		return nil, rep, err
	}

	records := make([]builder.Record, 0, len(raw))
	for i, elem := range raw {
		rep.Total++
		rec, ok, err := decodeEntry(elem)
		switch {
		case err != nil:
			rep.Malformed++
			log.Warn("malformed record", zap.Int("index", i), zap.Error(err))
		case !ok:
			rep.Skipped++
			log.Debug("record without genres", zap.Int("index", i), zap.String("title", rec.Title))
		default:
			rep.Loaded++
			records = append(records, rec)
		}
	}
	log.Info("dataset decoded",
		zap.Int("total", rep.Total),
		zap.Int("loaded", rep.Loaded),
		zap.Int("skipped", rep.Skipped),
		zap.Int("malformed", rep.Malformed),
	)

	return records, rep, nil
}

// readArray reads exactly one top-level JSON array from r and splits it into
// its elements. Any other top-level value, or trailing data after the array,
// is an ErrBadDocument.
func readArray(r io.Reader) ([]json.RawMessage, error) {
	dec := json.NewDecoder(r)
	var doc json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if trimmed := bytes.TrimSpace(doc); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrBadDocument
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the array", ErrBadDocument)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	return raw, nil
}

// decodeEntry returns ok == false for a well-formed entry without genres.
func decodeEntry(elem json.RawMessage) (builder.Record, bool, error) {
	var e entry
	if err := json.Unmarshal(elem, &e); err != nil {
		return builder.Record{}, false, err
	}
	rec := builder.Record{Title: e.Title, Country: e.Country}
	if len(e.Genres) == 0 || bytes.Equal(e.Genres, []byte("null")) {
		return rec, false, nil
	}
	// pointers tell a JSON null apart from a string
	var genres []*string
	if err := json.Unmarshal(e.Genres, &genres); err != nil {
		return builder.Record{}, false, fmt.Errorf("genres of %q: %w", e.Title, err)
	}
	rec.Labels = make([]string, 0, len(genres))
	for i, g := range genres {
		if g == nil {
			return builder.Record{}, false, fmt.Errorf("genres of %q: %w at position %d", e.Title, errNullGenre, i)
		}
		rec.Labels = append(rec.Labels, *g)
	}
	if len(rec.Labels) == 0 {
		return rec, false, nil
	}

	return rec, true, nil
}

// LoadFile opens path and decodes it.
func LoadFile(path string, log *zap.Logger) ([]builder.Record, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	records, rep, err := Decode(f, log)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", path, err)
	}
	return records, rep, nil
}
