// Package pagination provides sorting and paging for list commands.
//
// It contains:
//   - Params: --limit/--offset and --page/--page-size flag values with validation
//   - Meta: page metadata printed under a paged table
//   - CustomerSorter: stable sorting of customer rows by a named field
package pagination
