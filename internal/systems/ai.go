package systems

import (
	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
)

// ComputeEnemyAction решает, что делать врагу в этот ход.
// Действующий враг передается явно (мозг лежит рядом с ним в Entity,
// обратной ссылки "мозг -> владелец" нет).
//
// Возвращает nil, если легальных действий нет - враг ждет на месте.
// Это НЕ ошибка, а обычный исход хода.
func ComputeEnemyAction(enemy, player *domain.Entity, w *domain.World) *domain.GameAction {
	if enemy.Brain == nil || enemy.Stats.IsDead {
		return nil
	}

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"enemy":     enemy.Name,
		"pos":       enemy.Pos.String(),
	})

	// 1. Перебираем четыре направления в фиксированном порядке
	// (детерминизм при одинаковом сиде).
	var attack *domain.GameAction
	type moveCandidate struct {
		dest domain.Position
		dir  domain.Direction
	}
	var moves []moveCandidate

	playerAlive := player != nil && !player.Stats.IsDead

	for _, dir := range domain.AllDirections {
		target := enemy.Pos.Shift(dir.Delta())

		// Игрок в клетке-кандидате: предлагаем атаку.
		// Атака всегда предпочтительнее любого шага.
		if playerAlive && player.Pos == target {
			if attack == nil {
				attack = domain.AttackAction(enemy, player, dir)
			}
			continue
		}

		if !w.IsPassable(target) {
			continue
		}
		if other := w.EnemyAt(target); other != nil {
			continue
		}

		moves = append(moves, moveCandidate{dest: target, dir: dir})
	}

	if attack != nil {
		aiLogger.Debug("AI: attack candidate found, attacking player")
		return attack
	}

	// 2. Преследователь внутри агро-радиуса сужает кандидатов до шагов,
	// сокращающих манхэттенское расстояние до игрока.
	if enemy.Brain.Kind == domain.BrainStalker && playerAlive {
		dist := enemy.Pos.DeltaTo(player.Pos).Manhattan()
		if dist <= enemy.Enemy.AggroRadius {
			var closing []moveCandidate
			for _, m := range moves {
				if m.dest.DeltaTo(player.Pos).Manhattan() < dist {
					closing = append(closing, m)
				}
			}
			if len(closing) > 0 {
				moves = closing
				aiLogger.WithField("dist", dist).Debug("AI: stalker closing in")
			}
		}
	}

	// 3. Нет кандидатов - враг пропускает ход
	if len(moves) == 0 {
		aiLogger.Debug("AI: no legal action, waiting")
		return nil
	}

	// 4. Равномерный выбор личным рандомом мозга
	pick := moves[enemy.Brain.Rand.Intn(len(moves))]
	return domain.MoveAction(enemy, pick.dest, pick.dir)
}
