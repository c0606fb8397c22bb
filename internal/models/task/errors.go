package task

import "errors"

// ErrInvalidTask — сентинел для проверки через errors.Is
var ErrInvalidTask = errors.New("invalid task")

// InvalidTaskError возвращается конструкторами и Rename,
// когда задача не проходит валидацию. Причина — текст для пользователя.
type InvalidTaskError struct {
	Reason string
}

func (e *InvalidTaskError) Error() string {
	return e.Reason
}

func (e *InvalidTaskError) Unwrap() error {
	return ErrInvalidTask
}

func newInvalidTask(reason string) *InvalidTaskError {
	return &InvalidTaskError{Reason: reason}
}
