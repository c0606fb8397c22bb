package repository

import "errors"

// ErrNotFound возвращается операциями хранилища, когда задачи
// с запрошенным ID не существует.
var ErrNotFound = errors.New("task not found")
