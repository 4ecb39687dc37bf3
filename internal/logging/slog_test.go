package logging

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "parse")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("parse")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "parse" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "parse")
	}
}

func TestExpressionAttr(t *testing.T) {
	attr := Expression("next monday")
	if attr.Key != KeyExpression {
		t.Errorf("Expression key = %q, want %q", attr.Key, KeyExpression)
	}
	if attr.Value.String() != "next monday" {
		t.Errorf("Expression value = %q, want %q", attr.Value.String(), "next monday")
	}
}

func TestTimezoneAttr(t *testing.T) {
	attr := Timezone("Europe/Berlin")
	if attr.Key != KeyTimezone {
		t.Errorf("Timezone key = %q, want %q", attr.Key, KeyTimezone)
	}
}

func TestStrategyAttr(t *testing.T) {
	attr := Strategy("weekday")
	if attr.Key != KeyStrategy {
		t.Errorf("Strategy key = %q, want %q", attr.Key, KeyStrategy)
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
}

func TestErrAttr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "boom")
	}
}

func TestErrAttrNil(t *testing.T) {
	attr := Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty group", attr.Key)
	}
}

func TestTruncateExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short expression unchanged",
			input:    "next monday at 10am",
			expected: "next monday at 10am",
		},
		{
			name:     "newlines flattened",
			input:    "next\nmonday\r\nat 10am",
			expected: "next monday  at 10am",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateExpression(tt.input)
			if result != tt.expected {
				t.Errorf("TruncateExpression(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncateExpressionLong(t *testing.T) {
	long := strings.Repeat("x", 500)
	result := TruncateExpression(long)
	if len(result) != maxExpressionLen+3 {
		t.Errorf("TruncateExpression length = %d, want %d", len(result), maxExpressionLen+3)
	}
	if !strings.HasSuffix(result, "...") {
		t.Error("TruncateExpression should end with ellipsis")
	}
}
