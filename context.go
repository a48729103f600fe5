package i18n

import (
	"fmt"
	"math"
	"strconv"
)

// Context carries the named values substituted into a message template plus an
// optional count driving plural branch selection. Values keep insertion order
// so positional and auto-indexed tokens resolve the way the caller wrote them.
type Context struct {
	values []contextValue

	hasCount  bool
	countText string
	countNum  int64
	// countNum is only meaningful when the count converts to an integer;
	// a non-comparable count still renders through {?} but never matches
	// an explicit plural guard.
	countComparable bool
}

type contextValue struct {
	name string
	text string
}

// Ctx starts a fluent Context builder.
func Ctx() *Context {
	return &Context{}
}

// With appends a named value. Later values with the same name shadow earlier
// ones for named lookups but keep their own positional slot.
func (c *Context) With(name string, value any) *Context {
	c.values = append(c.values, contextValue{name: name, text: displayText(value)})
	return c
}

// WithCount records the plural count.
func (c *Context) WithCount(n int) *Context {
	return c.WithCountValue(n)
}

// WithCountValue records a count of any type. Counts that do not convert to an
// integer are present but non-comparable: guards never match them and the
// default branch renders.
func (c *Context) WithCountValue(value any) *Context {
	c.hasCount = true
	c.countText = displayText(value)
	c.countNum, c.countComparable = asInt64(value)
	return c
}

// HasCount reports whether a count was set.
func (c *Context) HasCount() bool {
	return c != nil && c.hasCount
}

// Count returns the comparable count value; ok is false when no count was set
// or when it does not convert to an integer.
func (c *Context) Count() (int64, bool) {
	if c == nil || !c.hasCount {
		return 0, false
	}
	return c.countNum, c.countComparable
}

// Len returns the number of positional values.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

func (c *Context) valueAt(index int) (string, bool) {
	if c == nil || index < 0 || index >= len(c.values) {
		return "", false
	}
	return c.values[index].text, true
}

func (c *Context) namedValue(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	for i := len(c.values) - 1; i >= 0; i-- {
		if c.values[i].name == name {
			return c.values[i].text, true
		}
	}
	return "", false
}

func (c *Context) countValue() (string, bool) {
	if c == nil || !c.hasCount {
		return "", false
	}
	return c.countText, true
}

// displayText renders a context value with locale-independent formatting.
// Integral floats print without a trailing ".0".
func displayText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float32:
		return asInt64(float64(v))
	case float64:
		// float64(MaxInt64) rounds to 2^63, one past the largest int64;
		// values at or beyond it would overflow the conversion.
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), true
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
