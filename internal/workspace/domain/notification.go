package domain

import "fmt"

type Category string

const (
	CategoryLoading Category = "LOADING"
	CategorySuccess Category = "SUCCESS"
	CategoryError   Category = "ERROR"
)

func ParseCategory(value string) (Category, error) {
	switch c := Category(value); c {
	case CategoryLoading, CategorySuccess, CategoryError:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNotificationCat, value)
	}
}

type Notification struct {
	Message  string
	Category Category
	Open     bool
}
