package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fittracker/backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("workout_type", func(fl validator.FieldLevel) bool {
		return domain.WorkoutType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("plan_status", func(fl validator.FieldLevel) bool {
		return domain.PlanStatus(fl.Field().String()).Valid()
	})
	return v
}

// decodeObject parses body as a JSON object and drops the server-assigned keys.
func decodeObject(body []byte, serverAssigned ...string) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, newValidationError([]Issue{{Field: "body", Reason: "expected a JSON object"}})
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, newValidationError([]Issue{{Field: "body", Reason: "malformed JSON"}})
	}
	for _, key := range serverAssigned {
		delete(raw, key)
	}
	return raw, nil
}

// parseInto decodes every raw field into the matching json-tagged field of dst
// (a pointer to struct), then runs the validate tags. All problems are
// collected into one ValidationError.
func parseInto(raw map[string]json.RawMessage, dst any) error {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	fields := make(map[string]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			fields[name] = i
		}
	}

	var issues []Issue
	typeFailed := make(map[string]bool)
	for key, value := range raw {
		idx, ok := fields[key]
		if !ok {
			issues = append(issues, Issue{Field: key, Reason: "unknown field"})
			continue
		}
		target := rv.Field(idx)
		if err := json.Unmarshal(value, target.Addr().Interface()); err != nil {
			target.Set(reflect.Zero(target.Type()))
			typeFailed[key] = true
			issues = append(issues, Issue{Field: key, Reason: "expected " + describe(target.Type())})
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if typeFailed[rootField(fe.Field())] {
				continue
			}
			issues = append(issues, Issue{Field: fe.Field(), Reason: reason(fe)})
		}
	}

	if len(issues) > 0 {
		return newValidationError(issues)
	}
	return nil
}

// rootField strips an element index: "focus[2]" -> "focus".
func rootField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

var timeType = reflect.TypeOf(time.Time{})

func describe(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch {
	case t == timeType:
		return "an RFC 3339 timestamp"
	case t.Kind() == reflect.String:
		return "a string"
	case t.Kind() == reflect.Int:
		return "an integer"
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String:
		return "a list of strings"
	}
	return t.String()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			if fe.Param() == "1" {
				return "must not be empty"
			}
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice:
			if fe.Param() == "1" {
				return "must contain at least one item"
			}
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	case "workout_type":
		return "must be one of: " + joinValues(domain.WorkoutTypes)
	case "plan_status":
		return "must be one of: " + joinValues(domain.PlanStatuses)
	}
	return "failed " + fe.Tag() + " check"
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Quote(string(v))
	}
	return strings.Join(parts, ", ")
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
