package validator

import (
	"resbook/errors"
	"resbook/models"
)

// ValidateResource validate thông tin resource trước khi lưu
func ValidateResource(resource *models.Resource) error {
	if resource.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Resource name is required", nil)
	}

	if resource.ResourceType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Resource type is required", nil)
	}

	if err := resource.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	return nil
}

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.EmployeeID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Employee ID is required", nil)
	}

	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !IsValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}

	if user.Role < 0 || user.Role > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}
