package domain

// HeaderSpec is one visible table column. ID doubles as the sort key lookup.
type HeaderSpec struct {
	ID             string
	Label          string
	Numeric        bool
	DisablePadding bool
	Clickable      bool
}
