// Package polestudio extracts structured studio records from a fixed set of
// venue listing pages. It fetches each page, applies selector-keyed field
// extraction rules to the parsed markup, and collects records together with a
// per-batch error log so that one failed field or one failed page never
// aborts the rest of the batch.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package polestudio
