package domain

import "fmt"

type FieldType uint8

const (
	FieldTypeText FieldType = iota + 1
	FieldTypeLargeText
	FieldTypeNumber
	FieldTypeSelect
	FieldTypeDate
	FieldTypeTimeRange
	FieldTypeBoolean
	FieldTypeEmail
)

var fieldTypeNames = [...]string{
	FieldTypeText:      "text",
	FieldTypeLargeText: "large_text",
	FieldTypeNumber:    "number",
	FieldTypeSelect:    "select",
	FieldTypeDate:      "date",
	FieldTypeTimeRange: "time_range",
	FieldTypeBoolean:   "boolean",
	FieldTypeEmail:     "email",
}

func FieldTypes() []FieldType {
	types := make([]FieldType, 0, len(fieldTypeNames)-1)
	for t := FieldTypeText; int(t) < len(fieldTypeNames); t++ {
		types = append(types, t)
	}
	return types
}

func ParseFieldType(value string) (FieldType, error) {
	for _, t := range FieldTypes() {
		if fieldTypeNames[t] == value {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFieldType, value)
}

func (t FieldType) Valid() bool {
	return t >= FieldTypeText && int(t) < len(fieldTypeNames)
}

func (t FieldType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
	return fieldTypeNames[t]
}

func (t FieldType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFieldType, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *FieldType) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
