package util

import (
	"fmt"
)

// EnumSet assigns each distinct string a dense index in order of first
// insertion.
type EnumSet struct {
	Enum  map[string]int
	Index []string
}

func (e *EnumSet) Add(value string) (int, bool) {
	enum, exists := e.Enum[value]
	if exists {
		return enum, false
	}
	enum = len(e.Index)
	e.Enum[value] = enum
	e.Index = append(e.Index, value)
	return enum, true
}

func (e *EnumSet) IndexOf(value string) (int, bool) {
	enum, exists := e.Enum[value]
	return enum, exists
}

func (e *EnumSet) ValueOf(index int) string {
	if index < 0 || len(e.Index) <= index {
		panic("Unknown index requested: " + fmt.Sprintf("%v of %v", index, len(e.Index)))
	}
	return e.Index[index]
}

func (e *EnumSet) Contains(value string) bool {
	_, exists := e.Enum[value]
	return exists
}

func (e *EnumSet) Len() int {
	return len(e.Index)
}

// Values returns a copy of the values in insertion order
func (e *EnumSet) Values() []string {
	retval := make([]string, len(e.Index))
	copy(retval, e.Index)
	return retval
}

func NewEnumSet(capacity int) *EnumSet {
	return &EnumSet{
		make(map[string]int, capacity),
		make([]string, 0, capacity),
	}
}
