// Package dataprocessing turns the raw Compass exports into the cleaned,
// normalized tables every report is computed from.
//
// It is organized into three components:
//
//  1. RecordCleaner: reads the shift log CSV, parses dates, derives the
//     calendar fields, and drops known-bad rows.
//  2. ProfileNormalizer: reads the volunteer export and canonicalizes city,
//     status, postal area code, and language.
//  3. Merge: left-joins cleaned shifts to normalized profiles.
//
// Row-level anomalies (unparseable dates, implausible hours) are expected
// noise in manually entered data and are dropped silently; only a missing
// file or a missing required column aborts a run.
package dataprocessing
