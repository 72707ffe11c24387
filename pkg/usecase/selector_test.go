package usecase_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rivoric/vstsdiff/pkg/domain/model"
	"github.com/rivoric/vstsdiff/pkg/usecase"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		exclude int
		want    int
		wantErr bool
	}{
		{
			name:    "Valid selection",
			input:   "2",
			count:   5,
			exclude: usecase.NoExclusion,
			want:    2,
		},
		{
			name:    "Valid selection with surrounding whitespace",
			input:   " 4\n",
			count:   5,
			exclude: usecase.NoExclusion,
			want:    4,
		},
		{
			name:    "Lower bound",
			input:   "0",
			count:   3,
			exclude: usecase.NoExclusion,
			want:    0,
		},
		{
			name:    "Upper bound is exclusive",
			input:   "3",
			count:   3,
			exclude: usecase.NoExclusion,
			wantErr: true,
		},
		{
			name:    "Negative",
			input:   "-1",
			count:   3,
			exclude: usecase.NoExclusion,
			wantErr: true,
		},
		{
			name:    "Not a number",
			input:   "staging",
			count:   3,
			exclude: usecase.NoExclusion,
			wantErr: true,
		},
		{
			name:    "Empty input",
			input:   "",
			count:   3,
			exclude: usecase.NoExclusion,
			wantErr: true,
		},
		{
			name:    "Excluded value rejected",
			input:   "1",
			count:   3,
			exclude: 1,
			wantErr: true,
		},
		{
			name:    "Non-excluded value accepted",
			input:   "2",
			count:   3,
			exclude: 1,
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ParseSelection(tt.input, tt.count, tt.exclude)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func testEnvironments(names ...string) []model.Environment {
	envs := make([]model.Environment, 0, len(names))
	for _, name := range names {
		envs = append(envs, model.Environment{Name: name})
	}
	return envs
}

func TestSelector_TwoEnvironments(t *testing.T) {
	var out bytes.Buffer
	s := usecase.NewSelector(strings.NewReader(""), &out)

	left, right, err := s.Select(testEnvironments("Staging", "Production"))

	gt.NoError(t, err)
	gt.Value(t, left).Equal(0)
	gt.Value(t, right).Equal(1)

	// No prompting at all with exactly two environments
	gt.Value(t, out.String()).Equal("")
}

func TestSelector_TooFewEnvironments(t *testing.T) {
	tests := []struct {
		name string
		envs []model.Environment
	}{
		{
			name: "No environments",
			envs: nil,
		},
		{
			name: "One environment",
			envs: testEnvironments("Production"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := usecase.NewSelector(strings.NewReader(""), &out)

			_, _, err := s.Select(tt.envs)

			gt.Error(t, err)
			code, ok := model.ExitCodeFrom(err)
			gt.Value(t, ok).Equal(true)
			gt.Value(t, code).Equal(2)
		})
	}
}

func TestSelector_PromptsExactlyTwice(t *testing.T) {
	var out bytes.Buffer
	s := usecase.NewSelector(strings.NewReader("0\n2\n"), &out)

	left, right, err := s.Select(testEnvironments("Dev", "QA", "Staging", "Production"))

	gt.NoError(t, err)
	gt.Value(t, left).Equal(0)
	gt.Value(t, right).Equal(2)
	gt.Value(t, left == right).Equal(false)

	gt.Value(t, strings.Count(out.String(), "Select left environment")).Equal(1)
	gt.Value(t, strings.Count(out.String(), "Select right environment")).Equal(1)

	// The enumerated list shows every environment
	for _, name := range []string{"Dev", "QA", "Staging", "Production"} {
		gt.String(t, out.String()).Contains(name)
	}
}

func TestSelector_RepromptsOnInvalidInput(t *testing.T) {
	// 9 out of range, "abc" not a number, 1 valid; then 1 excluded, 3 valid
	var out bytes.Buffer
	s := usecase.NewSelector(strings.NewReader("9\nabc\n1\n1\n3\n"), &out)

	left, right, err := s.Select(testEnvironments("Dev", "QA", "Staging", "Production"))

	gt.NoError(t, err)
	gt.Value(t, left).Equal(1)
	gt.Value(t, right).Equal(3)

	// The second prompt names the excluded selection
	gt.String(t, out.String()).Contains("not including 1")
}

func TestSelector_InputExhausted(t *testing.T) {
	var out bytes.Buffer
	s := usecase.NewSelector(strings.NewReader("not-a-number\n"), &out)

	_, _, err := s.Select(testEnvironments("Dev", "QA", "Staging"))

	gt.Error(t, err)
	// Input exhaustion is not one of the mandated exit codes
	_, ok := model.ExitCodeFrom(err)
	gt.Value(t, ok).Equal(false)
}
