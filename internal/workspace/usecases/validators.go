package usecases

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"hubble-workspace/internal/workspace/domain"
)

const (
	requiredMessageKey     = "required"
	defaultRequiredMessage = "This field is required."
)

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	emailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

type ruleValidator struct {
	check   func(value string, rule domain.Rule) bool
	message func(rule domain.Rule) string
}

func fixedMessage(msg string) func(domain.Rule) string {
	return func(domain.Rule) string { return msg }
}

// validators is indexed by domain.RuleName.
var validators = [domain.RuleCount]ruleValidator{
	domain.RuleMaxLength: {
		check: func(value string, rule domain.Rule) bool {
			return utf8.RuneCountInString(value) <= rule.Length
		},
		message: func(rule domain.Rule) string {
			return "Must be at most " + strconv.Itoa(rule.Length) + " characters long."
		},
	},
	domain.RuleMinLength: {
		check: func(value string, rule domain.Rule) bool {
			return utf8.RuneCountInString(value) >= rule.Length
		},
		message: func(rule domain.Rule) string {
			return "Must be at least " + strconv.Itoa(rule.Length) + " characters long."
		},
	},
	domain.RuleIsNumeric: {
		check: func(value string, _ domain.Rule) bool {
			_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return err == nil
		},
		message: fixedMessage("Please enter a valid number."),
	},
	domain.RuleIsInteger: {
		check: func(value string, _ domain.Rule) bool {
			_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			return err == nil
		},
		message: fixedMessage("Please enter a whole number."),
	},
	domain.RuleIsEmail: {
		check: func(value string, _ domain.Rule) bool {
			return emailRegex.MatchString(value)
		},
		message: fixedMessage("Please enter a valid email address."),
	},
	domain.RuleIsAlphanumeric: {
		check: func(value string, _ domain.Rule) bool {
			return alphanumericRegex.MatchString(value)
		},
		message: fixedMessage("Only letters and digits are allowed."),
	},
}

// checkRule returns the failure message for value, or "" when the rule holds.
func checkRule(field domain.FieldSpec, rule domain.Rule, value string) string {
	v := validators[rule.Name]
	if v.check(value, rule) {
		return ""
	}
	return field.Message(rule.Name.String(), v.message(rule))
}

type typeHandler func(field domain.FieldSpec, value any) (any, bool)

// typeHandlers is indexed by domain.FieldType. A nil entry keeps the value as is.
var typeHandlers = [...]typeHandler{
	domain.FieldTypeNumber:  coerceNumber,
	domain.FieldTypeBoolean: coerceBoolean,
	domain.FieldTypeSelect:  checkOption,
	domain.FieldTypeDate:    coerceDate,
	domain.FieldTypeEmail:   checkEmail,
}

var typeMessages = map[domain.FieldType]string{
	domain.FieldTypeNumber:  "Please enter a valid number.",
	domain.FieldTypeBoolean: "Please choose yes or no.",
	domain.FieldTypeSelect:  "Please choose one of the available options.",
	domain.FieldTypeDate:    "Please enter a valid date.",
	domain.FieldTypeEmail:   "Please enter a valid email address.",
}

// coerceField converts value to the field's native type. The message is empty
// on success.
func coerceField(field domain.FieldSpec, value any) (any, string) {
	if int(field.Type) >= len(typeHandlers) || typeHandlers[field.Type] == nil {
		return value, ""
	}

	coerced, ok := typeHandlers[field.Type](field, value)
	if !ok {
		return value, field.Message(field.Type.String(), typeMessages[field.Type])
	}
	return coerced, ""
}

func coerceNumber(_ domain.FieldSpec, value any) (any, bool) {
	if n, ok := toFloat(value); ok {
		return n, true
	}
	s, ok := value.(string)
	if !ok {
		return nil, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

func coerceBoolean(_ domain.FieldSpec, value any) (any, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, false
		}
		return b, true
	default:
		return nil, false
	}
}

func checkOption(field domain.FieldSpec, value any) (any, bool) {
	s, ok := value.(string)
	if !ok || !field.HasOption(s) {
		return nil, false
	}
	return s, true
}

func coerceDate(_ domain.FieldSpec, value any) (any, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return nil, false
}

func checkEmail(_ domain.FieldSpec, value any) (any, bool) {
	s, ok := value.(string)
	if !ok || !emailRegex.MatchString(s) {
		return nil, false
	}
	return s, true
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		if n, ok := toFloat(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return fmt.Sprint(v)
	}
}
