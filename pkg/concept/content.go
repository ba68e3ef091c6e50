package concept

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type rawKind uint8

const (
	rawAbsent rawKind = iota
	rawNumber
	rawText
	rawOther
)

// RawContent is caller-supplied Quantity content before coercion. The zero value is absent.
type RawContent struct {
	kind  rawKind
	num   float64
	text  string
	other any
}

// Absent is content that was not supplied
func Absent() RawContent { return RawContent{} }

// Number is content supplied as a float
func Number(v float64) RawContent { return RawContent{kind: rawNumber, num: v} }

// Text is content supplied as a string
func Text(s string) RawContent { return RawContent{kind: rawText, text: s} }

// Other is content of any other type. Coercing it always fails.
func Other(v any) RawContent { return RawContent{kind: rawOther, other: v} }

// RawFrom classifies an arbitrary Go value. Integers are not floats and classify as Other.
func RawFrom(v any) RawContent {
	switch x := v.(type) {
	case nil:
		return Absent()
	case RawContent:
		return x
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case *float64:
		if x == nil {
			return Absent()
		}
		return Number(*x)
	case string:
		return Text(x)
	case *string:
		if x == nil {
			return Absent()
		}
		return Text(*x)
	}
	return Other(v)
}

// IsAbsent reports whether no content was supplied
func (r RawContent) IsAbsent() bool { return r.kind == rawAbsent }

// CoerceQuantityContent normalizes raw to a finite or NaN float64.
//
// Absent content yields nil. Infinite values and unparseable text are logged at error
// level and rejected; unsupported types are rejected without a log entry.
func CoerceQuantityContent(raw RawContent) (*float64, error) {
	switch raw.kind {
	case rawAbsent:
		return nil, nil
	case rawNumber:
		if math.IsInf(raw.num, 0) {
			return nil, reject(KindOverflow, formatFloat(raw.num))
		}
		return accept(raw.num), nil
	case rawText:
		v, ok := parseFloat(raw.text)
		if !ok {
			return nil, reject(KindConversion, raw.text)
		}
		if math.IsInf(v, 0) {
			return nil, reject(KindOverflow, raw.text)
		}
		return accept(v), nil
	}
	currentObserver().Rejected(KindUnsupportedType)
	return nil, &CoercionError{Kind: KindUnsupportedType, Input: typeName(raw.other)}
}

func accept(v float64) *float64 {
	currentObserver().Coerced()
	return &v
}

func reject(kind Kind, input string) error {
	err := &CoercionError{Kind: kind, Input: input}
	logger().Error(kind.String() + ": " + err.Error())
	currentObserver().Rejected(kind)
	return err
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseFloat accepts decimal literals with optional sign, surrounding whitespace and
// underscores between digits, plus case-insensitive inf, infinity and nan.
// Hexadecimal forms are rejected. Decimal overflow yields an infinity.
func parseFloat(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	sign, body := "", t
	if t[0] == '+' || t[0] == '-' {
		sign, body = t[:1], t[1:]
	}
	switch strings.ToLower(body) {
	case "inf", "infinity":
		if sign == "-" {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case "nan":
		return math.NaN(), true
	}
	digits, ok := stripUnderscores(body)
	if !ok || !isDecimalLiteral(digits) {
		return 0, false
	}
	v, err := strconv.ParseFloat(sign+digits, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func stripUnderscores(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDecimalLiteral(s string) bool {
	if s == "" || (!isDigit(s[0]) && s[0] != '.') {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c), c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

var bytesType = reflect.TypeOf([]byte(nil))

// typeName names v the way rejection messages expect: list, dict, int, bool, or the Go type name
func typeName(v any) string {
	if v == nil {
		return "NoneType"
	}
	t := reflect.TypeOf(v)
	if t == bytesType {
		return "bytes"
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "dict"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "int"
	case reflect.Bool:
		return "bool"
	case reflect.Complex64, reflect.Complex128:
		return "complex"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
