package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"local-events/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// FieldError describes one malformed form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds one entry per malformed field, in struct field order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator turns raw form input into a draft the store can accept.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("ymd", matches(datePattern))
	_ = v.RegisterValidation("hhmm", matches(timePattern))
	return &Validator{validate: v}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Validate trims req and checks every field. On failure the returned error is
// a ValidationErrors.
func (v *Validator) Validate(req model.CreateEventRequest) (model.EventDraft, error) {
	draft := model.EventDraft{
		Title:       strings.TrimSpace(req.Title),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		ImageURI:    strings.TrimSpace(req.ImageURI),
	}
	if err := v.ValidateDraft(draft); err != nil {
		return model.EventDraft{}, err
	}
	return draft, nil
}

// ValidateDraft checks an already-built draft, e.g. a seeded event.
func (v *Validator) ValidateDraft(draft model.EventDraft) error {
	err := v.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "ymd":
		return "invalid date format (YYYY-MM-DD)"
	case "hhmm":
		return "invalid time format (HH:MM)"
	case "url":
		return "must be a valid image URL"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
