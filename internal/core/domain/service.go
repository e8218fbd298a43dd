package domain

// Service is a priced, categorized offering a technician may perform.
type Service struct {
	ID       int64   `json:"id"`
	Category string  `json:"category,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

const defaultCategory = "Other"

// CategoryOrDefault returns the free-form grouping key, falling back to
// "Other" when the service has no category.
func (s Service) CategoryOrDefault() string {
	if s.Category == "" {
		return defaultCategory
	}
	return s.Category
}
