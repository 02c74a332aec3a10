package actions

import (
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
)

// HandleMove переводит логическое намерение "шаг в направлении"
// в конкретное действие: если в целевой клетке стоит враг - атака,
// иначе шаг. Шаг в стену - просто no-op (поворот остается).
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir, ok := domain.ParseDirection(p.Direction)
	if !ok {
		return handlers.EmptyResult(), nil
	}

	target := ctx.Actor.Pos.Shift(dir.Delta())

	if enemy := ctx.World.EnemyAt(target); enemy != nil {
		ctx.Actor.Facing = dir
		msg := systems.ApplyAttack(ctx.Actor, enemy, ctx.World)
		return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
	}

	systems.ApplyMove(ctx.Actor, dir, ctx.World, ctx.Actor)
	return handlers.EmptyResult(), nil
}
