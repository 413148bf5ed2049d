package collection

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// numericString matches decimal numbers with an optional exponent. Words such
// as "nan" or "inf" and hex literals are plain strings.
var numericString = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

type numberKind int

const (
	signedNumber numberKind = iota
	unsignedNumber
	floatNumber
)

// number keeps integers exact so values above 2^53 stay distinct
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func (n number) float() float64 {
	switch n.kind {
	case signedNumber:
		return float64(n.i)
	case unsignedNumber:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n number) isZero() bool {
	switch n.kind {
	case signedNumber:
		return n.i == 0
	case unsignedNumber:
		return n.u == 0
	default:
		return n.f == 0
	}
}

// looseEqual compares two values the way loosely typed data is usually
// compared: numbers and numeric strings by value, bools by truthiness, nil
// against zero values, everything else by deep equality.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return true
		}
		other := a
		if other == nil {
			other = b
		}
		return isZero(other)
	}

	if ab, ok := a.(bool); ok {
		return ab == truthy(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == truthy(a)
	}

	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	if aNum && bNum {
		return equalNumbers(na, nb)
	}

	sa, aStr := a.(string)
	sb, bStr := b.(string)
	if aStr && bStr {
		return sa == sb
	}
	if aStr || bStr {
		return cast.ToString(a) == cast.ToString(b)
	}

	return reflect.DeepEqual(a, b)
}

// compareValues orders two sort keys: numerically when both are numeric,
// otherwise by their string form.
func compareValues(a, b any) int {
	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	if aNum && bNum {
		return compareNumbers(na, nb)
	}
	return strings.Compare(stringify(a), stringify(b))
}

func toNumber(v any) (number, bool) {
	switch val := v.(type) {
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(val)
		return number{kind: signedNumber, i: i}, err == nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(val)
		return number{kind: unsignedNumber, u: u}, err == nil
	case float32, float64:
		f, err := cast.ToFloat64E(val)
		return number{kind: floatNumber, f: f}, err == nil
	case string:
		return parseNumber(val)
	default:
		return number{}, false
	}
}

func parseNumber(s string) (number, bool) {
	s = strings.TrimSpace(s)
	if !numericString.MatchString(s) {
		return number{}, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{kind: signedNumber, i: i}, true
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return number{kind: unsignedNumber, u: u}, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, false
	}
	return number{kind: floatNumber, f: f}, true
}

func compareNumbers(a, b number) int {
	switch {
	case a.kind == signedNumber && b.kind == signedNumber:
		return cmp.Compare(a.i, b.i)
	case a.kind == unsignedNumber && b.kind == unsignedNumber:
		return cmp.Compare(a.u, b.u)
	case a.kind == signedNumber && b.kind == unsignedNumber:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == unsignedNumber && b.kind == signedNumber:
		return -compareNumbers(b, a)
	default:
		return cmp.Compare(a.float(), b.float())
	}
}

func equalNumbers(a, b number) bool {
	if a.kind == floatNumber || b.kind == floatNumber {
		return a.float() == b.float()
	}
	return compareNumbers(a, b) == 0
}

// truthy reports the boolean value of v: empty strings, "0", zero numbers,
// empty containers and nil pointers are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != "" && val != "0"
	}

	if n, ok := toNumber(v); ok {
		return !n.isZero()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func isZero(v any) bool {
	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	}
	if n, ok := toNumber(v); ok {
		return n.isZero()
	}
	return false
}

func stringify(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
