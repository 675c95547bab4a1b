package web

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/casesim/internal/casebank"
)

var registerOnce sync.Once

// registerValidators adds the section and diagnosis tags to gin's validator.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("section", validateSection)
		v.RegisterValidation("diagnosis", validateDiagnosis)

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func validateSection(fl validator.FieldLevel) bool {
	return casebank.Section(fl.Field().String()).Valid()
}

func validateDiagnosis(fl validator.FieldLevel) bool {
	_, err := casebank.ParseDiagnosis(fl.Field().String())
	return err == nil
}

// validationDetails flattens binding errors into per-field messages.
func validationDetails(err error) []ValidationErrorResponse {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]ValidationErrorResponse, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationErrorResponse{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Value:   fmt.Sprint(fe.Value()),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "section":
		return "must be one of: " + strings.Join(sectionKeys(), ", ")
	case "diagnosis":
		return "must be one of: " + strings.Join(diagnosisSlugs(), ", ")
	}
	return "is invalid"
}

func sectionKeys() []string {
	var keys []string
	for _, sec := range casebank.Sections() {
		keys = append(keys, string(sec))
	}
	return keys
}

func diagnosisSlugs() []string {
	var slugs []string
	for _, d := range casebank.Options() {
		slugs = append(slugs, d.Slug())
	}
	return slugs
}
