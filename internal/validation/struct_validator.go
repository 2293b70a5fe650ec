package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// Validator wraps the go-playground validator with the domain's custom tags
type Validator struct {
	validate *playground.Validate
}

var (
	instance *Validator
	initOnce sync.Once
)

// Get returns the shared validator
func Get() *Validator {
	initOnce.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())

		// report json names rather than Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("quota_step", validateQuotaStep)

		instance = &Validator{validate: v}
	})
	return instance
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateSettings checks user settings and wraps failures in domain.ErrInvalidInput
func (v *Validator) ValidateSettings(s domain.Settings) error {
	if err := v.validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, summarize(err))
	}
	return nil
}

// ValidateState checks the struct-level invariants of a decoded state, including
// inventory-wide id uniqueness which tags cannot express.
func (v *Validator) ValidateState(s domain.AppState) error {
	if err := v.validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, summarize(err))
	}
	if dups := s.Avatar.Inventory.DuplicateIDs(); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate item ids: %s", domain.ErrInvalidInput, strings.Join(dups, ", "))
	}
	return nil
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors playground.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "quota_step":
			errs[field] = fmt.Sprintf("Must be a multiple of %d", domain.StorageQuotaStepMB)
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func summarize(err error) string {
	fields := FormatValidationError(err)
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// validateQuotaStep accepts quotas that are a whole number of steps
func validateQuotaStep(fl playground.FieldLevel) bool {
	return fl.Field().Int()%domain.StorageQuotaStepMB == 0
}
