package models

// PageInfo carries the pagination envelope every list endpoint returns.
type PageInfo struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
}

// HasMore reports whether another page exists after this one.
func (p PageInfo) HasMore() bool {
	if p.PerPage <= 0 {
		return false
	}
	return p.Page*p.PerPage < p.Total
}
