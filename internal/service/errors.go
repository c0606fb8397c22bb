package service

import "fmt"

// BusinessError — ошибка бизнес-логики с кодом для вызывающего слоя.
// Message — готовый текст для пользователя.
type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}

	return busErr
}

func NewNotFound(id int, err error) *BusinessError {
	return &BusinessError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("Task with ID %d not found!", id),
		Details: map[string]any{
			"id": id,
		},
		Err: err,
	}
}

func NewValidationError(field, reason string, err error) *BusinessError {
	return &BusinessError{
		Code:    "VALIDATION_ERROR",
		Message: reason,
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
		Err: err,
	}
}
