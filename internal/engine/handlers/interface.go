package handlers

import (
	"encoding/json"

	"delve-server/internal/domain"
)

// Context передает хендлеру состояние мира.
// Ссылки, а не копии: хендлер мутирует состояние напрямую.
type Context struct {
	World *domain.World
	// Actor - тот, кто выполняет команду. В этом движке команды
	// извне принимает только игрок (враги ходят через AI-фазу).
	Actor *domain.Entity
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в журнал сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст для журнала ("" - ничего не писать)
	MsgType string // Тип записи (INFO, COMBAT, ERROR)
}

// HandlerFunc - контракт любой команды (MOVE, INTERACT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - пустой успешный ответ.
func EmptyResult() Result {
	return Result{}
}
