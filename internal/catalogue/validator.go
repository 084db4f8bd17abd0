package catalogue

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/showcase/internal/showcase"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the loader.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
			_, ok := showcase.ParseSeverity(fl.Field().String())
			return ok
		})

		v.RegisterStructValidation(validateTable, TableSpec{})
		v.RegisterStructValidation(validateOpenSection, Catalogue{})

		validateInst = v
	})

	return validateInst
}

func validateTable(sl validator.StructLevel) {
	table := sl.Current().Interface().(TableSpec)
	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			sl.ReportError(row, fmt.Sprintf("rows[%d]", i), "Rows", "row_width", fmt.Sprint(len(table.Columns)))
		}
	}
}

func validateOpenSection(sl validator.StructLevel) {
	cat := sl.Current().Interface().(Catalogue)
	if cat.OpenSection == 0 {
		return
	}
	for _, s := range cat.Sections {
		if s.ID == cat.OpenSection {
			return
		}
	}
	sl.ReportError(cat.OpenSection, "open_section", "OpenSection", "section_ref", "")
}

// Validate checks a catalogue and returns one ValidationError per failing field.
func Validate(cat *Catalogue) error {
	err := validatorInstance().Struct(cat)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrs) {
		return showcaseerrors.NewValidationError("", "catalogue is invalid", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, showcaseerrors.NewValidationError(fieldPath(fe), describe(fe), nil))
	}
	return stdErrors.Join(errs...)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "unique":
		return "ids must be unique"
	case "severity":
		return fmt.Sprintf("unknown severity %q (expected info, success, warning or error)", fe.Value())
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "needs at least " + fe.Param() + " entry"
	case "row_width":
		return "must have " + fe.Param() + " cells, one per column"
	case "section_ref":
		return "does not match any section id"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
