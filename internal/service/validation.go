package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

// validationError converts a validator error into the domain error,
// surfacing the first violated constraint.
func validationError(err error) *appErrors.Error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		msg := fmt.Sprintf("%s failed validation on '%s'", fieldName(first), first.Tag())
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msg)
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace reads like "ParentRegistration.Children[0].Subjects";
	// drop the root struct name, keep the path.
	ns := fe.StructNamespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// checkListItems rejects list items that would be ambiguous in a
// comma-joined rendering.
func checkListItems(field string, items []string) *appErrors.Error {
	for _, item := range items {
		if strings.Contains(item, ",") {
			msg := fmt.Sprintf("%s items must not contain commas", field)
			return appErrors.Clone(appErrors.ErrValidation, msg)
		}
	}
	return nil
}
