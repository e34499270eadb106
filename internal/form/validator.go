// Package form validates HTTP request bodies before they reach the engine.
package form

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidateStruct works like validation.ValidateStruct but collects every
// violation into an InvalidArgument status with BadRequest details.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	br := &errdetails.BadRequest{}

	for _, rule := range rules {
		err := validation.ValidateStruct(structPtr, rule)
		if err == nil {
			continue
		}
		var ve validation.Errors
		if !errors.As(err, &ve) {
			// internal errors come from misused rules, not from input
			return status.New(codes.Internal, err.Error()).Err()
		}
		keys := make([]string, 0, len(ve))
		for k := range ve {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       k,
				Description: formatErrMsg(k + " " + ve[k].Error()),
			})
		}
	}
	if len(br.FieldViolations) == 0 {
		return nil
	}

	st, err := status.New(codes.InvalidArgument, "validation failed").WithDetails(br)
	if err != nil {
		return status.New(codes.Internal, err.Error()).Err()
	}
	return st.Err()
}

// Violations returns the field violation messages carried by err.
func Violations(err error) []string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	var out []string
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, fv := range br.GetFieldViolations() {
				out = append(out, fv.GetDescription())
			}
		}
	}
	return out
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}
