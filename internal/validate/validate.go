// Package validate checks a single raw field value against optional constraints.
//
// Each constraint only applies to values of its kind: length bounds to strings,
// numeric bounds to numbers. A constraint that does not apply is skipped.
package validate

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var checker = validator.New()

// Validatable describes one field value and the constraints it must meet.
// Nil bounds are not checked.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Len returns a length bound for MinLength/MaxLength.
func Len(n int) *int { return &n }

// Bound returns a numeric bound for Min/Max.
func Bound(f float64) *float64 { return &f }

// Validate reports whether v satisfies every constraint it carries.
func Validate(v Validatable) bool {
	num, numeric := asNumber(v.Value)
	if numeric && math.IsNaN(num) && (v.Required || v.Min != nil || v.Max != nil) {
		return false
	}

	if v.Required && !check(strings.TrimSpace(fmt.Sprint(v.Value)), "required") {
		return false
	}

	if s, ok := v.Value.(string); ok {
		var tags []string
		if v.MinLength != nil {
			tags = append(tags, "min="+strconv.Itoa(*v.MinLength))
		}
		if v.MaxLength != nil {
			tags = append(tags, "max="+strconv.Itoa(*v.MaxLength))
		}
		if !check(s, tags...) {
			return false
		}
	}

	if numeric {
		var tags []string
		if v.Min != nil {
			tags = append(tags, "min="+formatFloat(*v.Min))
		}
		if v.Max != nil {
			tags = append(tags, "max="+formatFloat(*v.Max))
		}
		if !check(num, tags...) {
			return false
		}
	}
	return true
}

func check(value any, tags ...string) bool {
	if len(tags) == 0 {
		return true
	}
	return checker.Var(value, strings.Join(tags, ",")) == nil
}

func asNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
