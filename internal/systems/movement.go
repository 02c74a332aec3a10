package systems

import (
	"delve-server/internal/domain"
)

// MovementResult - результат вычисления движения.
type MovementResult struct {
	Dest      domain.Position
	HasMoved  bool
	BlockedBy *domain.Entity // Если уперлись в живую сущность (повод для атаки)
	IsWall    bool           // Если уперлись в стену или границу сетки
}

// CalculateMove вычисляет шаг сущности в направлении dir.
// Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dir domain.Direction, w *domain.World, player *domain.Entity) MovementResult {
	target := e.Pos.Shift(dir.Delta())
	res := MovementResult{Dest: target}

	// 1. Стены и выход за сетку чанка.
	// Мир бесконечен, поэтому "за границей" означает лишь то,
	// что нужный чанк сгенерируется лениво внутри GetCell.
	if !w.IsPassable(target) {
		res.IsWall = true
		return res
	}

	// 2. Живые сущности. Игрок и враги непроходимы, предметы - нет.
	if other := w.EnemyAt(target); other != nil && other.ID != e.ID {
		res.BlockedBy = other
		return res
	}
	if player != nil && player.ID != e.ID && player.Pos == target && !player.Stats.IsDead {
		res.BlockedBy = player
		return res
	}

	res.HasMoved = true
	return res
}

// ApplyMove исполняет шаг: ВСЕГДА поворачивает сущность в сторону
// движения, перемещает только если клетка свободна. Для врага
// перемещение идет через мир, чтобы миграция между чанками
// (удалить из списка старого, добавить в новый) не потерялась.
func ApplyMove(e *domain.Entity, dir domain.Direction, w *domain.World, player *domain.Entity) bool {
	e.Facing = dir

	res := CalculateMove(e, dir, w, player)
	if !res.HasMoved {
		return false
	}

	if e.IsEnemy() {
		w.MoveEnemy(e, res.Dest)
	} else {
		e.Pos = res.Dest
	}
	return true
}
