// Package customers holds the customer list domain: the row snapshot returned
// by the licensing backend, the filter predicate applied to it, the bulk
// selection set and the summary reported after a bulk delete.
//
// Nothing in this package performs I/O. The list view and the CLI both build
// on these types so that the same predicate decides what the backend is asked
// for and what is finally rendered.
package customers
