package validation

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"

	"elms-portal/internal/department"
	"elms-portal/internal/leave"
	"elms-portal/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field (its json name) to a human-readable message.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Clear drops the error of field, as when the user edits it.
func (e Errors) Clear(field string) {
	delete(e, field)
}

// Fields returns the failing field names, sorted.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// FieldErrors is the error returned when a form fails validation.
type FieldErrors struct {
	Fields Errors
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FixErrorsMessage is the summary shown next to the field messages.
const FixErrorsMessage = "Please fix the errors above"

// AsAppError converts the field errors into the portal's error shape.
func (e *FieldErrors) AsAppError() *apperror.AppError {
	return apperror.New(apperror.CodeValidation, FixErrorsMessage, http.StatusBadRequest).WithDetails(e.Fields)
}

// FieldsOf extracts field errors from err, if any.
func FieldsOf(err error) (Errors, bool) {
	var fe *FieldErrors
	if errors.As(err, &fe) {
		return fe.Fields, true
	}
	return nil, false
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(apperror.JSONTagName)
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
			return department.IsValid(fl.Field().String())
		})
		_ = v.RegisterValidation("leavetype", func(fl validator.FieldLevel) bool {
			return leave.Type(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			_, err := leave.ParseDate(fl.Field().String())
			return err == nil
		})
		v.RegisterStructValidation(leaveFormRange, LeaveForm{})
		validate = v
	})
	return validate
}

// Validate runs the rules of form and returns one message per failing field.
// It never panics: a nil or non-struct form yields a "form" entry.
func Validate(form any) Errors {
	errs := Errors{}
	if form == nil {
		errs["form"] = "Form is empty"
		return errs
	}

	err := engine().Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = "Form is invalid"
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fe.Tag())
	}
	return errs
}

// Check validates form and returns a *FieldErrors when it fails.
func Check(form any) error {
	if errs := Validate(form); !errs.Valid() {
		return &FieldErrors{Fields: errs}
	}
	return nil
}
