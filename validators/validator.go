// Package validators plugs go-playground/validator into echo and holds the
// content rules for tweets.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator with the project's custom tags registered.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("tweettext", func(fl validator.FieldLevel) bool {
		return ValidateTweetData(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// Validate validates a struct using its validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidateTweetData reports whether text is acceptable tweet content: a
// non-blank string of at most MaxTweetLength characters.
func ValidateTweetData(text string) bool {
	if text == "" {
		return false
	}
	if utf8.RuneCountInString(text) > models.MaxTweetLength {
		return false
	}
	return strings.TrimSpace(text) != ""
}

// Message turns a validation error into a single client-facing sentence.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long (max %s characters)", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s is too short (min %s characters)", fe.Field(), fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "tweettext":
		if text, ok := fe.Value().(string); ok && utf8.RuneCountInString(text) > models.MaxTweetLength {
			return fmt.Sprintf("%s is too long (max %d characters)", fe.Field(), models.MaxTweetLength)
		}
		return fmt.Sprintf("%s must not be blank", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
