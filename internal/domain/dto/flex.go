package dto

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	maxFlexInt = decimal.NewFromInt(math.MaxInt64)
	minFlexInt = decimal.NewFromInt(math.MinInt64)
)

// FlexInt accepts a JSON number or a numeric string. Anything else, including values
// outside int64, reads as 0.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			*f = 0
			return nil
		}
		s = unquoted
	}
	*f = parseFlexInt(s)
	return nil
}

// UnmarshalParam lets echo bind query and form values.
func (f *FlexInt) UnmarshalParam(param string) error {
	*f = parseFlexInt(param)
	return nil
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}

func parseFlexInt(s string) FlexInt {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	d = d.Truncate(0)
	if d.GreaterThan(maxFlexInt) || d.LessThan(minFlexInt) {
		return 0
	}
	return FlexInt(d.IntPart())
}
