package domain

// ID names a record inside its resource. Both the generated id and the
// user facing identifier use it.
type ID string

func (id ID) String() string {
	return string(id)
}
