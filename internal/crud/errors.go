package crud

import "errors"

// ErrIllegalState сигнализирует об ошибке связывания: контроллеру не передали
// обязательную зависимость. Это ошибка программиста, а не пользователя.
var ErrIllegalState = errors.New("illegal state")
