package usecase

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

// WriteEnvironmentFile serializes one environment as a JSON document to a
// uniquely named file in the OS temp directory. The file name is seeded
// from the environment name with spaces replaced by underscores. An indent
// of zero or less produces a compact document.
//
// The caller owns the file; nothing deletes it on later failures.
func WriteEnvironmentFile(env model.Environment, indent int) (string, error) {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(env, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(env)
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to serialize environment", goerr.V("name", env.Name))
	}

	prefix := strings.ReplaceAll(env.Name, " ", "_")
	f, err := os.CreateTemp("", prefix+"-*.json")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create temp file", goerr.V("name", env.Name))
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", goerr.Wrap(err, "failed to write temp file", goerr.V("path", f.Name()))
	}

	if err := f.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close temp file", goerr.V("path", f.Name()))
	}

	return f.Name(), nil
}
