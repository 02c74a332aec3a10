package actions

import (
	"delve-server/internal/engine/handlers"
)

// HandleWait - игрок пропускает ход. Враги все равно сходят.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
