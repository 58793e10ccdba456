package domain

import "time"

type (
	Product struct {
		ProductID   string
		Name        string
		Description string
		Brand       string
		Category    string
		Price       float64
		Rating      float64
		ReviewCount int
		InStock     bool
		Sizes       []string
		Images      []string
	}

	Review struct {
		ReviewID  string
		ProductID string
		Author    string
		Rating    int
		Title     string
		Comment   string
		Verified  bool
		Date      time.Time
	}
)

// HasSize reports whether the product is sold in the given size.
// Sizeless products accept only the empty size.
func (p Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
