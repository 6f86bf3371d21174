package cmd

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON encodes v to outPath, or to w when outPath is empty.
func writeJSON(w io.Writer, v interface{}, outPath string) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	d = append(d, '\n')
	if outPath == "" {
		_, err = w.Write(d)
		return err
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", outPath)
	}
	return nil
}
