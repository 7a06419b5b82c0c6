// Package responses provides typed access to raw questionnaire answers.
//
// Answers arrive as a flat map whose keys are not canonical: depending on
// which questionnaire version produced them, the same logical field may be
// spelled kebab-case ("gross-monthly-salary") or camelCase
// ("grossMonthlySalary"). Every lookup tries each spelling and defaults to a
// zero value rather than erroring.
package responses

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Responses is a raw questionnaire answer set.
type Responses map[string]any

// Resolver reads logical fields out of a raw answer set. Canonical field
// names are kebab-case; the camelCase variant is derived automatically and
// extra variants can be registered per field.
type Resolver struct {
	raw     Responses
	aliases map[string][]string
}

func NewResolver(raw Responses) *Resolver {
	return &Resolver{
		raw:     raw,
		aliases: map[string][]string{},
	}
}

// AddAlias registers an extra spelling for a canonical field.
func (r *Resolver) AddAlias(canonical string, variants ...string) *Resolver {
	r.aliases[canonical] = append(r.aliases[canonical], variants...)
	return r
}

// Raw returns the underlying answer set.
func (r *Resolver) Raw() Responses {
	return r.raw
}

func (r *Resolver) variants(canonical string) []string {
	variants := []string{canonical}
	if camel := CamelCase(canonical); camel != canonical {
		variants = append(variants, camel)
	}
	variants = append(variants, r.aliases[canonical]...)
	return variants
}

func (r *Resolver) lookup(canonical string) (any, bool) {
	for _, key := range r.variants(canonical) {
		if value, ok := r.raw[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// Float returns the first non-zero numeric value found under any of the
// given canonical fields, or 0.
func (r *Resolver) Float(canonicals ...string) float64 {
	for _, canonical := range canonicals {
		if value, ok := r.lookup(canonical); ok {
			if f, ok := coerceFloat(value); ok && f != 0 {
				return f
			}
		}
	}
	return 0
}

// Int returns the first non-zero integer value found, or 0.
func (r *Resolver) Int(canonicals ...string) int {
	for _, canonical := range canonicals {
		if value, ok := r.lookup(canonical); ok {
			if f, ok := coerceFloat(value); ok && f != 0 {
				return int(f)
			}
		}
	}
	return 0
}

// String returns the first non-empty string value found, or "".
func (r *Resolver) String(canonicals ...string) string {
	for _, canonical := range canonicals {
		if value, ok := r.lookup(canonical); ok {
			if s := coerceString(value); s != "" {
				return s
			}
		}
	}
	return ""
}

// Bool returns the first value found that coerces to true.
func (r *Resolver) Bool(canonicals ...string) bool {
	for _, canonical := range canonicals {
		if value, ok := r.lookup(canonical); ok {
			if coerceBool(value) {
				return true
			}
		}
	}
	return false
}

// Date parses the first value found as a date string. The zero time is
// returned when nothing parses.
func (r *Resolver) Date(canonicals ...string) time.Time {
	for _, canonical := range canonicals {
		if value, ok := r.lookup(canonical); ok {
			s := coerceString(value)
			if s == "" {
				continue
			}
			for _, layout := range []string{"2006-01-02", time.RFC3339, "01/02/2006"} {
				if t, err := time.Parse(layout, s); err == nil {
					return t
				}
			}
		}
	}
	return time.Time{}
}

func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		// money fields arrive as "$1,500.00" from some questionnaire versions
		cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(v, "$"), ",", ""))
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		lower := strings.ToLower(strings.TrimSpace(v))
		return lower == "true" || lower == "yes" || lower == "y" || lower == "1"
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

// CamelCase converts a kebab-case or snake_case key to camelCase.
func CamelCase(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return key
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// Humanize turns a raw response key into a display label:
// "employer-name" and "employerName" both become "Employer Name".
func Humanize(key string) string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range key {
		switch {
		case r == '-' || r == '_' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// SortedKeys returns the answer keys in a stable order. Used by the
// plain-text fallback so identical inputs render identically.
func (r Responses) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
