package domain

import "errors"

var (
	ErrUnknownFieldType       = errors.New("unknown field type")
	ErrUnknownRule            = errors.New("unknown validation rule")
	ErrInvalidRuleArgument    = errors.New("invalid validation rule argument")
	ErrIdentifierRequired     = errors.New("field identifier is required")
	ErrDuplicateIdentifier    = errors.New("duplicate field identifier")
	ErrOptionsMismatch        = errors.New("options must be present for select fields only")
	ErrInvalidFilterDefault   = errors.New("filter default value does not match its type")
	ErrTimeRangeKeysRequired  = errors.New("time range filter requires start and end identifiers")
	ErrUnknownNotificationCat = errors.New("unknown notification category")
)
