// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates normalizes the heterogeneous date spellings found in the
// source tables to a single calendar date.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnparseableDate reports a date field matching none of the accepted formats.
var ErrUnparseableDate = errors.New("unparseable date")

// layouts are the accepted input formats, tried in priority order. A string
// matching more than one layout resolves to the earliest listed.
var layouts = []string{
	"02/01/2006",     // day/month/year with slashes
	"2006-01-02",     // ISO 8601
	"2 January 2006", // day, full month name, year
}

// isoLayout is the canonical output form.
const isoLayout = "2006-01-02"

// Parse converts a date string in any accepted format to a calendar date.
func Parse(text string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, text)
}

// Format renders a calendar date in the dash-separated ISO form, whatever
// format it was parsed from. Format(Parse(x)) is identical for every
// accepted spelling x of the same date.
func Format(t time.Time) string {
	return t.Format(isoLayout)
}
