package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueGoExpr(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"int", Value{Literal: int64(4096)}, "4096"},
		{"negative int", Value{Literal: int64(-1)}, "-1"},
		{"string quoted", Value{Literal: "Guten tag!"}, `"Guten tag!"`},
		{"string with escapes", Value{Literal: "a\"b"}, `"a\"b"`},
		{"bool", Value{Literal: true}, "true"},
		{"float", Value{Literal: 0.5}, "0.5"},
		{"whole float", Value{Literal: 2.0}, "2"},
		{"variant reference", Value{Enum: "Choice", Variant: "Other"}, "ChoiceOther"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.GoExpr())
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "Choice.Other", Value{Enum: "Choice", Variant: "Other"}.String())
	assert.Equal(t, "4096", Value{Literal: int64(4096)}.String())
	assert.Equal(t, "hello", Value{Literal: "hello"}.String())
}
