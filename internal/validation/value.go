package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrCast reports a body or query value the store cannot convert to the
// field's type.
var ErrCast = errors.New("cast failed")

// Value is a JSON body field kept as sent. `binding:"required"` on a Value
// checks that it is truthy: present and not null, false, 0 or "".
// Conversion to the stored type happens later through AsString and AsNumber.
type Value []byte

func (v *Value) UnmarshalJSON(b []byte) error {
	*v = append((*v)[:0], b...)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			return field.Interface().(Value).Truthy()
		}, Value(nil))
	}
}

// Truthy reports whether the raw JSON would pass a presence check.
func (v Value) Truthy() bool {
	raw := bytes.TrimSpace(v)
	if len(raw) == 0 {
		return false
	}

	switch raw[0] {
	case 'n', 'f':
		return false
	case '"':
		return len(raw) > 2
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(raw), 64)
		return err != nil || f != 0
	}
	return true
}

// AsString converts the value the way a string column casts it: strings as
// is, numbers and booleans to their text form. Objects and arrays fail.
func (v Value) AsString() (string, error) {
	raw := bytes.TrimSpace(v)
	if len(raw) == 0 {
		return "", errors.Wrap(ErrCast, "empty value to string")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errors.Wrapf(ErrCast, "%s to string", raw)
		}
		return s, nil
	case 't':
		return "true", nil
	case 'f':
		return "false", nil
	case '{', '[', 'n':
		return "", errors.Wrapf(ErrCast, "%s to string", raw)
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return "", errors.Wrapf(ErrCast, "%s to string", raw)
	}
	return formatNumber(f), nil
}

// AsNumber converts the value the way a number column casts it: numbers as
// is, numeric strings parsed, booleans to 1 or 0. Anything else fails.
func (v Value) AsNumber() (float64, error) {
	raw := bytes.TrimSpace(v)
	if len(raw) == 0 {
		return 0, errors.Wrap(ErrCast, "empty value to number")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errors.Wrapf(ErrCast, "%s to number", raw)
		}
		return ParseNumber(s)
	case 't':
		return 1, nil
	case 'f':
		return 0, nil
	case '{', '[', 'n':
		return 0, errors.Wrapf(ErrCast, "%s to number", raw)
	}

	return ParseNumber(string(raw))
}

// ParseNumber casts a query or body string to a number. Surrounding
// whitespace is ignored and a blank string is 0. NaN and infinities fail.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrCast, "%q to number", s)
	}
	return f, nil
}

func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
