package validation

import (
	"strings"

	"github.com/tatthien/church-equipment/pkg/constants"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

// Outcome is the accept/reject result of a field rule. A rejected outcome
// always carries a machine-readable sub-code; the orchestration layer maps
// codes to user-facing text.
type Outcome struct {
	OK      bool
	Code    string
	Message string
}

func accept() Outcome {
	return Outcome{OK: true}
}

func reject(code, message string) Outcome {
	return Outcome{Code: code, Message: message}
}

// ValidateEquipmentStatus accepts a nil value (meaning "no change" on update,
// or "use the default" on create) or one of the five known statuses.
// Matching is exact: "New" and "" are both rejected.
func ValidateEquipmentStatus(value *string) Outcome {
	if value == nil {
		return accept()
	}
	if _, ok := constants.EquipmentStatuses[*value]; !ok {
		return reject(apperrors.CodeInvalidStatus, "status must be one of: new, old, damaged, repairing, disposed")
	}
	return accept()
}

// ValidateRequiredName applies uniformly to Equipment, Brand and Department
// names: non-empty after trimming.
func ValidateRequiredName(value string) Outcome {
	if strings.TrimSpace(value) == "" {
		return reject(apperrors.CodeMissingName, "name is required")
	}
	return accept()
}

// ValidateCredentials checks the minimum lengths used for both login and
// user provisioning.
func ValidateCredentials(username, password string) Outcome {
	if len(username) < constants.MinUsernameLength {
		return reject(apperrors.CodeUsernameTooShort, "username must be at least 3 characters")
	}
	if len(password) < constants.MinPasswordLength {
		return reject(apperrors.CodePasswordTooShort, "password must be at least 6 characters")
	}
	return accept()
}

// ValidatePassword checks a password on its own, for updates where the
// username is not being changed.
func ValidatePassword(password string) Outcome {
	if len(password) < constants.MinPasswordLength {
		return reject(apperrors.CodePasswordTooShort, "password must be at least 6 characters")
	}
	return accept()
}

// ValidateUserRole accepts a nil value (create defaults to "user") or one of
// the two known roles.
func ValidateUserRole(value *string) Outcome {
	if value == nil {
		return accept()
	}
	if *value != constants.RoleUser && *value != constants.RoleAdmin {
		return reject(apperrors.CodeInvalidRole, "role must be either user or admin")
	}
	return accept()
}

// Err converts a rejected outcome into the VALIDATION_FAILED error envelope
// for the given field. Returns nil for accepted outcomes.
func (o Outcome) Err(field string) error {
	if o.OK {
		return nil
	}
	return apperrors.NewValidationError(field, o.Code, o.Message)
}
