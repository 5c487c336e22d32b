package app

import (
	"fmt"
	"net/mail"
	"net/url"
)

// Rule constrains one payload field. Rules are evaluated in slice order and
// the first violation is reported; nothing is aggregated.
type Rule struct {
	Field    string
	Required bool
	MinLen   int
	MaxLen   int
	Enum     []string
	Email    bool
	URL      bool
	Numeric  bool
}

type RuleSet []Rule

// Validate checks data against the rule set and returns the change-set of
// known fields with normalized values. In update mode required-field
// presence is not enforced, only the format and length of fields that are
// present, and an empty resulting change-set is itself a violation.
func (rs RuleSet) Validate(data map[string]any, update bool) (map[string]any, error) {
	changeset := make(map[string]any, len(data))

	for _, rule := range rs {
		raw, present := data[rule.Field]
		if !present || raw == nil {
			if rule.Required && !update {
				return nil, fmt.Errorf("%w: %s is required", ErrValidation, rule.Field)
			}
			continue
		}

		if rule.Numeric {
			id, err := toNumeric(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid %s", ErrValidation, rule.Field)
			}
			changeset[rule.Field] = id
			continue
		}

		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string", ErrValidation, rule.Field)
		}
		if value == "" && rule.Required && !update {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, rule.Field)
		}
		if value != "" {
			if rule.MinLen > 0 && len(value) < rule.MinLen {
				return nil, fmt.Errorf("%w: %s must be at least %d characters", ErrValidation, rule.Field, rule.MinLen)
			}
			if rule.MaxLen > 0 && len(value) > rule.MaxLen {
				return nil, fmt.Errorf("%w: %s must not exceed %d characters", ErrValidation, rule.Field, rule.MaxLen)
			}
			if rule.Email {
				if _, err := mail.ParseAddress(value); err != nil {
					return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
				}
			}
			if rule.URL && !isValidURL(value) {
				return nil, fmt.Errorf("%w: invalid url format", ErrValidation)
			}
			if len(rule.Enum) > 0 && !contains(rule.Enum, value) {
				return nil, fmt.Errorf("%w: invalid %s value", ErrValidation, rule.Field)
			}
		}
		changeset[rule.Field] = value
	}

	if update && len(changeset) == 0 {
		return nil, fmt.Errorf("%w: no valid fields to update", ErrValidation)
	}
	return changeset, nil
}

func toNumeric(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		if v < 0 || v != float64(int64(v)) {
			return 0, fmt.Errorf("not a non-negative integer")
		}
		return int64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative")
		}
		return int64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative")
		}
		return v, nil
	case uint:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("not numeric")
	}
}

func isValidURL(value string) bool {
	parsed, err := url.Parse(value)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
