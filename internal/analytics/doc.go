// Package analytics computes the derived engagement and retention tables
// from the cleaned shift records. Every function is pure: it receives an
// immutable snapshot of the cleaned table and returns a freshly constructed,
// deterministically ordered result, so running the pipeline twice over the
// same input yields identical output.
package analytics
