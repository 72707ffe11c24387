package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

func TestEnvironment_UnmarshalKeepsRawDocument(t *testing.T) {
	doc := `{"id":21,"name":"Staging","rank":1,"deployPhases":[{"rank":1}]}`

	var env model.Environment
	gt.NoError(t, json.Unmarshal([]byte(doc), &env))

	gt.Value(t, env.Name).Equal("Staging")
	gt.Value(t, string(env.Raw)).Equal(doc)

	// Marshal emits the document verbatim, unknown fields included
	out, err := json.Marshal(env)
	gt.NoError(t, err)
	gt.Value(t, string(out)).Equal(doc)
}

func TestEnvironment_MarshalWithoutRaw(t *testing.T) {
	out, err := json.Marshal(model.Environment{Name: "QA"})
	gt.NoError(t, err)
	gt.Value(t, string(out)).Equal(`{"name":"QA"}`)
}

func TestExitCodeFrom(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOK   bool
	}{
		{
			name:     "Plain exit error",
			err:      model.NewExitError(model.ExitTooFewEnvironments, "too few"),
			wantCode: 2,
			wantOK:   true,
		},
		{
			name:     "HTTP status error",
			err:      model.NewHTTPStatusError(403, "forbidden"),
			wantCode: 403,
			wantOK:   true,
		},
		{
			name:     "Wrapped exit error",
			err:      goerr.Wrap(model.NewExitError(model.ExitCompareToolNotFound, "no tool"), "resolving tool"),
			wantCode: 3,
			wantOK:   true,
		},
		{
			name:   "Unrelated error",
			err:    goerr.New("something else"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := model.ExitCodeFrom(tt.err)
			gt.Value(t, ok).Equal(tt.wantOK)
			if tt.wantOK {
				gt.Value(t, code).Equal(tt.wantCode)
			}
		})
	}
}

func TestExitCodeError_Message(t *testing.T) {
	plain := model.NewExitError(model.ExitDefinitionNotFound, "release definition not found")
	gt.Value(t, plain.Error()).Equal("release definition not found")

	wrapped := model.WrapExitError(model.ExitDefinitionNotFound, "lookup failed", goerr.New("boom"))
	gt.String(t, wrapped.Error()).Contains("lookup failed")
	gt.String(t, wrapped.Error()).Contains("boom")
}
