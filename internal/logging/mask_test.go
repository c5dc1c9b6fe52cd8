// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bearer token in error text",
			input:    "request failed: Bearer eyJhbGciOiJIUzI1NiJ9.abc.def rejected",
			expected: "request failed: Bearer *** rejected",
		},
		{
			name:     "token query parameter",
			input:    "callback url token=abc123xyz state=ff00",
			expected: "callback url token=*** state=ff00",
		},
		{
			name:     "telegram init data",
			input:    "exchange body initData=query_id%3DAAH4ZP",
			expected: "exchange body initData=***",
		},
		{
			name:     "deep link handshake state",
			input:    "https://t.me/wilibot?start=webauth_a1b2c3d4e5f60718",
			expected: "https://t.me/wilibot?start=webauth_***",
		},
		{
			name:     "api key",
			input:    "apikey=sk_test_123456",
			expected: "apikey=***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}
