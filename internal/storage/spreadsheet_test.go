package storage

import (
	"errors"
	"testing"
)

func TestValidateHeaders(t *testing.T) {
	ordersRow := []interface{}{
		"submitted on", "name", "email", "Anxiety Reset", "Immune Harmony",
		"promo code", "address", "city", "phone", "order number", "send email",
	}

	testCases := []struct {
		TestName      string
		Rows          [][]interface{}
		Expected      map[string]int
		ExpectedError error
	}{
		{
			TestName: "Orders header accepted #1",
			Rows:     [][]interface{}{ordersRow},
			Expected: ordersHeaders,
		},
		{
			TestName: "Header names are case-insensitive #2",
			Rows:     [][]interface{}{{"Discount Code", "% Discount", "Status"}},
			Expected: discountsHeaders,
		},
		{
			TestName:      "Error. Empty sheet #3",
			Rows:          nil,
			Expected:      ordersHeaders,
			ExpectedError: ErrMissingHeader,
		},
		{
			TestName:      "Error. Header out of position #4",
			Rows:          [][]interface{}{{"name", "submitted on", "email"}},
			Expected:      ordersHeaders,
			ExpectedError: ErrMissingHeader,
		},
		{
			TestName:      "Error. Header row too short #5",
			Rows:          [][]interface{}{{"submitted on", "name", "email"}},
			Expected:      ordersHeaders,
			ExpectedError: ErrMissingHeader,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			err := validateHeaders(tc.Rows, tc.Expected)
			if tc.ExpectedError == nil && err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
			if tc.ExpectedError != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestIsSent(t *testing.T) {
	testCases := []struct {
		Value    string
		Expected bool
	}{
		{"TRUE", true},
		{"true", true},
		{"1", true},
		{" TRUE ", true},
		{"", false},
		{"FALSE", false},
		{"no", false},
	}

	for _, tc := range testCases {
		if got := isSent(tc.Value); got != tc.Expected {
			t.Errorf("isSent(%q): expected %v, got %v", tc.Value, tc.Expected, got)
		}
	}
}
