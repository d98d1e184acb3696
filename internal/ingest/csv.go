// Package ingest parses the sightings CSV into normalized records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Required header columns.
const (
	ColumnDateTime    = "date_time"
	ColumnShape       = "ufo_shape"
	ColumnDuration    = "encounter_length"
	ColumnDescription = "description"
	ColumnLatitude    = "latitude"
	ColumnLongitude   = "longitude"
)

var requiredColumns = []string{
	ColumnDateTime,
	ColumnShape,
	ColumnDuration,
	ColumnDescription,
	ColumnLatitude,
	ColumnLongitude,
}

// timestampLayouts are tried in order.
var timestampLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// SkipReason explains why a row was discarded.
type SkipReason string

// Skip reasons.
const (
	SkipMissingCoordinates SkipReason = "missing_coordinates"
	SkipMissingShape       SkipReason = "missing_shape"
	SkipBadDuration        SkipReason = "bad_duration"
	SkipBadTimestamp       SkipReason = "bad_timestamp"
	SkipShortRow           SkipReason = "short_row"
	SkipInvalid            SkipReason = "invalid"
)

// Result is the outcome of a parse.
type Result struct {
	Reasons map[SkipReason]int
	Records []model.Record
	Skipped int
}

// ParseCSV reads a header-addressed sightings CSV. Rows that cannot be
// normalized are discarded and counted; only unreadable input or a
// missing required column is an error.
func ParseCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, fmt.Errorf("%w: empty input", common.ErrMissingColumn)
		}
		return Result{}, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return Result{}, err
	}

	res := Result{Reasons: make(map[SkipReason]int)}
	row := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}
		row++

		rec, reason := parseRow(fields, cols)
		if reason != "" {
			res.Skipped++
			res.Reasons[reason]++
			continue
		}
		rec.ID = row
		res.Records = append(res.Records, rec)
	}

	if res.Skipped > 0 {
		slog.Info("Discarded unusable rows",
			"skipped", res.Skipped,
			"kept", len(res.Records),
			"reasons", res.reasonSummary())
	}

	return res, nil
}

func (r Result) reasonSummary() string {
	keys := make([]string, 0, len(r.Reasons))
	for k := range r.Reasons {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, r.Reasons[SkipReason(k)])
	}
	return strings.Join(parts, ",")
}

func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(fields []string, cols map[string]int) (model.Record, SkipReason) {
	get := func(col string) (string, bool) {
		i := cols[col]
		if i >= len(fields) {
			return "", false
		}
		return strings.TrimSpace(fields[i]), true
	}

	for _, c := range requiredColumns {
		if _, ok := get(c); !ok {
			return model.Record{}, SkipShortRow
		}
	}

	latRaw, _ := get(ColumnLatitude)
	lngRaw, _ := get(ColumnLongitude)
	lat, okLat := parseCoordinate(latRaw)
	lng, okLng := parseCoordinate(lngRaw)
	if !okLat || !okLng {
		return model.Record{}, SkipMissingCoordinates
	}

	shape, _ := get(ColumnShape)
	if shape == "" || strings.EqualFold(shape, "NA") {
		return model.Record{}, SkipMissingShape
	}

	durRaw, _ := get(ColumnDuration)
	dur, err := strconv.ParseFloat(durRaw, 64)
	if err != nil || math.IsNaN(dur) || dur <= 0 {
		return model.Record{}, SkipBadDuration
	}

	rawTS, _ := get(ColumnDateTime)
	ts, ok := ParseTimestamp(rawTS)
	if !ok {
		return model.Record{}, SkipBadTimestamp
	}

	desc, _ := get(ColumnDescription)

	rec := model.Record{
		RawTimestamp:    rawTS,
		Category:        strings.ToLower(shape),
		Description:     desc,
		Year:            ts.Year(),
		Month:           int(ts.Month()),
		Day:             ts.Day(),
		Hour:            ts.Hour(),
		Minute:          ts.Minute(),
		TimeOfDayHours:  float64(ts.Hour()) + float64(ts.Minute())/60,
		DurationSeconds: dur,
		Latitude:        lat,
		Longitude:       lng,
	}
	if err := rec.Validate(); err != nil {
		return model.Record{}, SkipInvalid
	}
	return rec, ""
}

func parseCoordinate(s string) (float64, bool) {
	if s == "" || strings.EqualFold(s, "NA") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseTimestamp parses a sighting timestamp in any accepted layout. The
// wall clock is kept as written; no zone conversion happens.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
