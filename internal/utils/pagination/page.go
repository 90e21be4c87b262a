package pagination

const (
	// DefaultPerPage is used when the caller does not ask for a page size.
	DefaultPerPage = 15
	// MaxPerPage caps every listing unless a smaller cap is configured.
	MaxPerPage = 100
)

// Normalize clamps page to at least 1 and perPage to [1, maxPerPage],
// substituting DefaultPerPage for a zero or negative size.
func Normalize(page, perPage, maxPerPage int) (int, int) {
	if maxPerPage <= 0 {
		maxPerPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// Offset returns the number of rows to skip for a normalized page.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}

// LastPage returns the number of the final page, never less than 1.
func LastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
