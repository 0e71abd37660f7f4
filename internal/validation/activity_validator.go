package validation

// ActivityValidator provides validation for activity identifiers coming in
// from the CLI or host application
type ActivityValidator struct {
	validator *Validator
}

// NewActivityValidator creates a new activity validator
func NewActivityValidator() *ActivityValidator {
	return &ActivityValidator{
		validator: NewValidator(),
	}
}

// ValidateActivityID validates an activity identifier
func (av *ActivityValidator) ValidateActivityID(id string) error {
	validationError := NewValidationError()

	if !av.validator.IsNonEmptyString(id) {
		validationError.AddRequiredError("activity_id")
	} else if !av.validator.IsValidActivityID(id) {
		validationError.AddInvalidValueError("activity_id", id, "must be at most 255 characters with no whitespace or control characters")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
