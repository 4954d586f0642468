package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ruleSeparator    = "|"
	ruleArgSeparator = ":"
)

type RuleName uint8

const (
	RuleMaxLength RuleName = iota + 1
	RuleMinLength
	RuleIsNumeric
	RuleIsInteger
	RuleIsEmail
	RuleIsAlphanumeric
)

var ruleNames = [...]string{
	RuleMaxLength:      "maxLength",
	RuleMinLength:      "minLength",
	RuleIsNumeric:      "isNumeric",
	RuleIsInteger:      "isInteger",
	RuleIsEmail:        "isEmail",
	RuleIsAlphanumeric: "isAlphanumeric",
}

// RuleCount sizes lookup tables indexed by RuleName.
const RuleCount = len(ruleNames)

func RuleNames() []RuleName {
	names := make([]RuleName, 0, RuleCount-1)
	for r := RuleMaxLength; int(r) < RuleCount; r++ {
		names = append(names, r)
	}
	return names
}

func ParseRuleName(value string) (RuleName, error) {
	for _, r := range RuleNames() {
		if ruleNames[r] == value {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, value)
}

func (r RuleName) String() string {
	if r < RuleMaxLength || int(r) >= RuleCount {
		return fmt.Sprintf("RuleName(%d)", uint8(r))
	}
	return ruleNames[r]
}

func (r RuleName) takesLength() bool {
	return r == RuleMaxLength || r == RuleMinLength
}

// Rule is one parsed validation rule. Length rules carry their bound in Length.
type Rule struct {
	Name   RuleName
	Length int
}

func ParseRule(value string) (Rule, error) {
	rawName, rawArg, hasArg := strings.Cut(strings.TrimSpace(value), ruleArgSeparator)

	name, err := ParseRuleName(rawName)
	if err != nil {
		return Rule{}, err
	}

	rule := Rule{Name: name}
	switch {
	case name.takesLength():
		if !hasArg {
			return Rule{}, fmt.Errorf("%w: %s needs a length", ErrInvalidRuleArgument, name)
		}
		length, err := strconv.Atoi(rawArg)
		if err != nil || length < 0 {
			return Rule{}, fmt.Errorf("%w: %s:%s", ErrInvalidRuleArgument, name, rawArg)
		}
		rule.Length = length
	case hasArg:
		return Rule{}, fmt.Errorf("%w: %s takes no argument", ErrInvalidRuleArgument, name)
	}

	return rule, nil
}

func (r Rule) String() string {
	if r.Name.takesLength() {
		return r.Name.String() + ruleArgSeparator + strconv.Itoa(r.Length)
	}
	return r.Name.String()
}

// RuleChain is an ordered list of rules written as "maxLength:200|isNumeric".
type RuleChain []Rule

func ParseRuleChain(value string) (RuleChain, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	parts := strings.Split(value, ruleSeparator)
	chain := make(RuleChain, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		rule, err := ParseRule(part)
		if err != nil {
			return nil, fmt.Errorf("parsing rule chain %q: %w", value, err)
		}
		chain = append(chain, rule)
	}

	return chain, nil
}

func (c RuleChain) String() string {
	parts := make([]string, len(c))
	for i, rule := range c {
		parts[i] = rule.String()
	}
	return strings.Join(parts, ruleSeparator)
}

func (c RuleChain) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *RuleChain) UnmarshalText(text []byte) error {
	parsed, err := ParseRuleChain(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
