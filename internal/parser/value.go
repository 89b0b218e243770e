package parser

import (
	"strconv"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueFloatType
	ValueStringType
)

// Value is the value of a literal expression.
// The set of implementations is closed: nil, boolean, number and string.
type Value interface {
	Type() ValueType
	String() string
	value()
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueFloat  float64
	ValueString string
)

var (
	NilValue   = ValueNil{}
	TrueValue  = ValueBool(true)
	FalseValue = ValueBool(false)
)

// Type implements Value.
func (v ValueNil) Type() ValueType {
	return ValueNilType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueFloat) Type() ValueType {
	return ValueFloatType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

func (v ValueNil) String() string {
	return "nil"
}

func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String renders integral numbers without a fractional part.
func (v ValueFloat) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v ValueString) String() string {
	return string(v)
}

func (ValueNil) value()    {}
func (ValueBool) value()   {}
func (ValueFloat) value()  {}
func (ValueString) value() {}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
)
