// Package cli provides the stdin/stdout JSON plumbing shared by the
// scheduler and validator binaries: decode one request object from
// stdin, run go-playground/validator's struct-tag checks before any
// domain code sees it, and encode exactly one response object to
// stdout.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Hadrian1992/HarmonogramMaster/pkg/errors"
)

var validate = validator.New()

// ReadInput decodes a single JSON object from r into v and runs
// struct-tag validation on the result. A decode failure is reported as
// CodeInvalidInput; a struct-tag failure is folded into a
// CodeValidationFail AppError naming every failing field.
func ReadInput(r io.Reader, v interface{}) *apperrors.AppError {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInvalidInput, "failed to decode JSON input")
	}

	if err := validate.Struct(v); err != nil {
		verrs := &apperrors.ValidationErrors{}
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				verrs.Add(fe.Namespace(), fmt.Sprintf("failed on %q validation", fe.Tag()))
			}
		} else {
			verrs.Add("_", err.Error())
		}
		return verrs.ToAppError()
	}
	return nil
}

// WriteOutput encodes v as indented JSON to w, followed by a newline.
func WriteOutput(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Fail prints a one-line diagnostic to stderr and returns the code's
// mapped exit status, for the caller to pass to os.Exit.
func Fail(err *apperrors.AppError) int {
	fmt.Fprintln(os.Stderr, err.Error())
	return err.Code.ExitCode()
}
