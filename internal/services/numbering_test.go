package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/denmor86/order-confirm/internal/config"
	"github.com/denmor86/order-confirm/internal/logger"
	"github.com/denmor86/order-confirm/internal/storage/mocks"
)

func TestNextOrderNumber(t *testing.T) {
	testCases := []struct {
		TestName string
		Last     string
		Expected string
	}{
		{
			TestName: "Empty column restarts numbering #1",
			Last:     "",
			Expected: "00001",
		},
		{
			TestName: "Header row restarts numbering #2",
			Last:     "order number",
			Expected: "00001",
		},
		{
			TestName: "Placeholder with letter suffix restarts numbering #3",
			Last:     "0012A",
			Expected: "00001",
		},
		{
			TestName: "Numeric value increments #4",
			Last:     "00011",
			Expected: "00012",
		},
		{
			TestName: "Padding preserved #5",
			Last:     "00099",
			Expected: "00100",
		},
		{
			TestName: "Surrounding spaces ignored #6",
			Last:     " 00041 ",
			Expected: "00042",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if next := NextOrderNumber(tc.Last); next != tc.Expected {
				t.Errorf("Expected %q, got %q", tc.Expected, next)
			}
		})
	}
}

func TestFormatOrderNumber(t *testing.T) {
	testCases := []struct {
		TestName string
		Number   string
		Expected string
	}{
		{TestName: "Short number padded #1", Number: "42", Expected: "00042"},
		{TestName: "Full width unchanged #2", Number: "00042", Expected: "00042"},
		{TestName: "Overflow unchanged #3", Number: "100000", Expected: "100000"},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := FormatOrderNumber(tc.Number); got != tc.Expected {
				t.Errorf("Expected %q, got %q", tc.Expected, got)
			}
		})
	}
}

func TestNumbering_AssignNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	numbering := NewNumbering(mockStorage)

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		ExpectedRows  []int
		ExpectedError error
	}{
		{
			TestName: "No new orders #1",
			SetupMocks: func() {
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "A").Return([]string{"submitted on", "4/27/2024 10:31:22", "4/28/2024 9:05:10"}, nil)
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "J").Return([]string{"order number", "00041", "00042"}, nil)
			},
			ExpectedRows:  nil,
			ExpectedError: nil,
		},
		{
			TestName: "Two new orders continue sequence #2",
			SetupMocks: func() {
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "A").Return([]string{"submitted on", "a", "b", "c", "d"}, nil)
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "J").Return([]string{"order number", "00041", "00042"}, nil)
				mockStorage.EXPECT().UpdateCell(gomock.Any(), 4, "J", "00043").Return(nil)
				mockStorage.EXPECT().UpdateCell(gomock.Any(), 5, "J", "00044").Return(nil)
			},
			ExpectedRows:  []int{4, 5},
			ExpectedError: nil,
		},
		{
			TestName: "Numbering restarts after header only #3",
			SetupMocks: func() {
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "A").Return([]string{"submitted on", "a", "b"}, nil)
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "J").Return([]string{"order number"}, nil)
				mockStorage.EXPECT().UpdateCell(gomock.Any(), 2, "J", "00001").Return(nil)
				mockStorage.EXPECT().UpdateCell(gomock.Any(), 3, "J", "00002").Return(nil)
			},
			ExpectedRows:  []int{2, 3},
			ExpectedError: nil,
		},
		{
			TestName: "Numbering restarts after placeholder #4",
			SetupMocks: func() {
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "A").Return([]string{"submitted on", "a", "b"}, nil)
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "J").Return([]string{"order number", "0007B"}, nil)
				mockStorage.EXPECT().UpdateCell(gomock.Any(), 3, "J", "00001").Return(nil)
			},
			ExpectedRows:  []int{3},
			ExpectedError: nil,
		},
		{
			TestName: "Error. Write failure aborts numbering #5",
			SetupMocks: func() {
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "A").Return([]string{"submitted on", "a", "b"}, nil)
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "J").Return([]string{"order number"}, nil)
				mockStorage.EXPECT().UpdateCell(gomock.Any(), 2, "J", "00001").Return(errors.New("quota exceeded"))
			},
			ExpectedRows:  []int{},
			ExpectedError: errors.New("failed to write order number 00001 to row 2: quota exceeded"),
		},
		{
			TestName: "Error. Read failure #6",
			SetupMocks: func() {
				mockStorage.EXPECT().ColumnValues(gomock.Any(), "A").Return(nil, errors.New("unavailable"))
			},
			ExpectedRows:  nil,
			ExpectedError: errors.New("failed to read submissions column: unavailable"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			rows, err := numbering.AssignNumbers(ctx)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}

			if diff := cmp.Diff(tc.ExpectedRows, rows); diff != "" {
				t.Errorf("Rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
