package engine

import (
	"delve-server/internal/domain"
	"delve-server/internal/systems"
)

// runEnemyPhase дает сходить каждому активному врагу.
//
// Активные враги - из 3x3 чанков вокруг игрока. Порядок строго
// детерминирован: чанки в фиксированном порядке обхода, внутри
// чанка - порядок вставки. Враги ходят последовательно, каждый
// видит результат ходов предыдущих.
func (s *GameSession) runEnemyPhase() {
	// Снимок списка ДО ходов: враг, мигрировавший в чанк дальше
	// по порядку обхода, не должен сходить дважды.
	enemies := s.activeEnemies()

	for _, enemy := range enemies {
		if enemy.Stats.IsDead {
			continue
		}

		action := systems.ComputeEnemyAction(enemy, s.Player, s.World)
		if action == nil {
			continue // Нет легальных действий - враг ждет. Не ошибка.
		}
		s.executeEnemyAction(action)
	}
}

// activeEnemies собирает врагов 3x3 чанков вокруг игрока.
// Только УЖЕ созданные чанки: фаза врагов не генерирует мир.
func (s *GameSession) activeEnemies() []*domain.Entity {
	center := domain.ChunkIDFromPosition(s.Player.Pos)

	var out []*domain.Entity
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			id := domain.ChunkID{X: center.X + dx, Y: center.Y + dy}
			if chunk, ok := s.World.Loaded(id); ok {
				out = append(out, chunk.Enemies...)
			}
		}
	}
	return out
}

// executeEnemyAction применяет действие врага к миру.
// Действие эфемерно: исполнили и забыли.
func (s *GameSession) executeEnemyAction(a *domain.GameAction) {
	switch a.Type {
	case domain.ActionAttack:
		msg := systems.ApplyAttack(a.Actor, a.Target, s.World)
		s.appendLog(msg, "COMBAT")
		if a.Target.IsPlayer() && a.Target.Stats.IsDead {
			s.appendLog("Тьма смыкается. Вы погибли.", "COMBAT")
		}
	case domain.ActionMove:
		systems.ApplyMove(a.Actor, a.Direction, s.World, s.Player)
	}
}
