package store

// PageSize is the fixed number of rows returned by every paginated listing.
const PageSize = 10

// PageOffset converts a 1-indexed page number into a row offset. Page numbers
// at or below zero mean "first page"; callers cannot request a total count,
// so the only end-of-data signal is an undersized or empty page.
func PageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
