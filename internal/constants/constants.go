package constants

// Pagination bounds for list endpoints.
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultHistoryLimit is how many history entries show-history returns when
// no limit is given.
const DefaultHistoryLimit = 20
