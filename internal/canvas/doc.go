// Package canvas provides a client for the Canvas LMS REST API and the
// normalization pipeline that turns its heterogeneous records into
// canonical assignment items.
//
// Canvas exposes due work through two differently shaped feeds: the
// per-course assignments endpoint returns flat assignment records, while
// the calendar events endpoint wraps the same data inside event objects
// with an optional nested "assignment" sub-record. The normalizer in this
// package accepts both shapes and resolves every field through an ordered
// list of extraction strategies, so the "where might this field live"
// policy stays in one place.
package canvas
