// Package validation проверяет пользовательский ввод и конфигурацию
// с помощью go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxPasswordLen bcrypt не принимает пароли длиннее 72 байт
const MaxPasswordLen = 72

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginInput данные формы входа
type LoginInput struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=72"`
}

// ValidateEmail проверяет формат email (пробелы по краям допускаются)
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if err := validate.Var(email, "email,max=254"); err != nil {
		return fmt.Errorf("email %q is not valid", email)
	}
	return nil
}

// ValidatePassword проверяет, что пароль не пуст и помещается в bcrypt
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}
	return nil
}

// ValidateLogin проверяет пару email/пароль
func ValidateLogin(email, password string) error {
	return Struct(LoginInput{Email: strings.TrimSpace(email), Password: password})
}

// Struct проверяет структуру по тегам validate и собирает понятное сообщение
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	case "min", "gte", "gt":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
