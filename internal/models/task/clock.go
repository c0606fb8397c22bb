package task

import "time"

// Now — источник текущего времени для всех вычислений пакета.
// Подменяется в тестах.
var Now = time.Now
