package domain

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Page holds limit/offset pagination parameters.
type Page struct {
	Limit  int
	Offset int
}

// Normalize fills in defaults for zero values.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
