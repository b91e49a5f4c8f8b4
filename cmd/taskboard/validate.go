package main

import (
	"taskboard/internal/domain/errors"

	"github.com/go-playground/validator"
)

// validateForm checks a form payload against its struct tags. Stores
// trust their inputs, so this is the only validation layer.
func validateForm(form any) error {
	valid := validator.New()
	if err := valid.Struct(form); err != nil {
		return validationErrorToError(err)
	}
	return nil
}

func validationErrorToError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			switch verr.Field() {
			case "Username":
				return errors.ErrInvalidUsername
			case "Email":
				return errors.ErrInvalidEmail
			case "Password":
				return errors.ErrInvalidPassword
			case "Title":
				return errors.ErrInvalidTitle
			case "Description":
				return errors.ErrInvalidDescription
			case "Priority":
				return errors.ErrInvalidPriority
			case "Status":
				return errors.ErrInvalidStatus
			case "DueDate":
				return errors.ErrInvalidDueDate
			case "Name":
				return errors.ErrInvalidName
			case "Color":
				return errors.ErrInvalidColor
			case "ProjectID":
				return errors.ErrInvalidProject
			case "Avatar":
				return errors.ErrValidationFailed
			}
		}
	}
	return errors.ErrValidationFailed
}
