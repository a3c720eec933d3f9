package update_profile

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

const (
	msgRequired         = "is required"
	msgInvalidEmail     = "must be a valid email"
	msgPasswordMismatch = "must match password"
	msgInvalidValue     = "is invalid"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Ключи ошибок совпадают с полями формы
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// profileForm правила формы профиля.
// Поля пароля обязательны только при смене пароля, подтверждение всегда должно совпадать
type profileForm struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	OldPassword          string `json:"old_password"`
	Password             string `json:"password" validate:"required_with=OldPassword"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required_with=OldPassword,eqfield=Password"`
}

// validateProfile проверяет форму профиля. Возвращает nil, если ошибок нет
func validateProfile(p domain.ProfileUpdate) *ValidationError {
	form := profileForm{
		Name:                 strings.TrimSpace(p.Name),
		Email:                strings.TrimSpace(p.Email),
		OldPassword:          p.OldPassword,
		Password:             p.Password,
		PasswordConfirmation: p.PasswordConfirmation,
	}

	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: map[string]string{"form": err.Error()}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe.Tag())
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(tag string) string {
	switch tag {
	case "required", "required_with":
		return msgRequired
	case "email":
		return msgInvalidEmail
	case "eqfield":
		return msgPasswordMismatch
	default:
		return msgInvalidValue
	}
}
