package actions

import (
	"delve-server/internal/engine/handlers"
	"delve-server/internal/systems"
)

// HandleInteract берет/ставит блок в клетке, в которую смотрит игрок.
// Невыполненное предусловие (нечего выломать / некуда поставить) -
// молчаливый no-op, не ошибка.
func HandleInteract(ctx handlers.Context) (handlers.Result, error) {
	target := ctx.Actor.Pos.Shift(ctx.Actor.Facing.Delta())

	msg := systems.ApplyInteract(ctx.World, ctx.Actor, target)
	if msg == "" {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}
