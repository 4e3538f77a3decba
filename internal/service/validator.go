package service

import (
	"regexp"
	"strings"

	"github.com/faridmohammadi00/entrypoint-app/internal/entity"
)

const PasswordMinLen = 6

var emailRegexp = regexp.MustCompile(`\S+@\S+\.\S+`)

type field struct {
	name  string
	value string
}

func required(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &entity.FieldError{Field: f.name, Err: entity.ErrFieldRequired}
		}
	}

	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &entity.FieldError{Field: "email", Err: entity.ErrFieldRequired}
	}

	if !emailRegexp.MatchString(email) {
		return &entity.FieldError{Field: "email", Err: entity.ErrEmailInvalidFormat}
	}

	return nil
}

func ValidatePassword(name, password string) error {
	if password == "" {
		return &entity.FieldError{Field: name, Err: entity.ErrFieldRequired}
	}

	if len(password) < PasswordMinLen {
		return &entity.FieldError{Field: name, Err: entity.ErrPasswordTooShort}
	}

	return nil
}

func ValidateConfirmation(name, password, confirmation string) error {
	if password != confirmation {
		return &entity.FieldError{Field: name, Err: entity.ErrPasswordMismatch}
	}

	return nil
}

func ValidateLogin(c entity.Credentials) error {
	err := ValidateEmail(c.Email)
	if err != nil {
		return err
	}

	return required(field{"password", c.Password})
}

func ValidateRegistration(r entity.Registration) error {
	err := required(field{"fullname", r.FullName})
	if err != nil {
		return err
	}

	err = ValidateEmail(r.Email)
	if err != nil {
		return err
	}

	err = required(field{"idNumber", r.IDNumber}, field{"phone", r.Phone})
	if err != nil {
		return err
	}

	err = ValidatePassword("password", r.Password)
	if err != nil {
		return err
	}

	return ValidateConfirmation("confirmPassword", r.Password, r.ConfirmPassword)
}

func ValidatePasswordChange(pc entity.PasswordChange) error {
	err := required(field{"current_password", pc.CurrentPassword})
	if err != nil {
		return err
	}

	err = ValidatePassword("new_password", pc.NewPassword)
	if err != nil {
		return err
	}

	return ValidateConfirmation("confirm_password", pc.NewPassword, pc.ConfirmPassword)
}

func ValidateNewBuilding(b entity.NewBuilding) error {
	err := required(field{"name", b.Name}, field{"address", b.Address}, field{"city", b.City})
	if err != nil {
		return err
	}

	return b.Validate()
}

func ValidateNewDoorman(d entity.NewDoorman) error {
	err := required(field{"fullname", d.FullName})
	if err != nil {
		return err
	}

	err = ValidateEmail(d.Email)
	if err != nil {
		return err
	}

	err = ValidatePassword("password", d.Password)
	if err != nil {
		return err
	}

	return required(field{"phone", d.Phone}, field{"idNumber", d.IDNumber})
}

func ValidateNewVisitor(v entity.NewVisitor) error {
	err := required(field{"fullname", v.FullName}, field{"id_number", v.IDNumber}, field{"phone", v.Phone})
	if err != nil {
		return err
	}

	return v.Validate()
}

func ValidateNewVisit(v entity.NewVisit) error {
	err := required(field{"building_id", v.BuildingID}, field{"visitor_id", v.VisitorID})
	if err != nil {
		return err
	}

	return v.Validate()
}

func ValidateNewUser(u entity.NewUser) error {
	err := required(field{"fullName", u.FullName})
	if err != nil {
		return err
	}

	err = ValidateEmail(u.Email)
	if err != nil {
		return err
	}

	return ValidatePassword("password", u.Password)
}
