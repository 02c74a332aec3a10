package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
)

// ApplyAttack наносит удар attacker -> target и возвращает строку
// для игрового журнала. Смерть врага обрабатывается здесь же:
// бросок по таблице лута и удаление из чанка.
func ApplyAttack(attacker, target *domain.Entity, w *domain.World) string {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	if target.Stats == nil || target.Stats.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return fmt.Sprintf("%s бьет пустоту.", attacker.Name)
	}

	// Урон: у игрока фиксированный, у врага - из справочника вида.
	damage := domain.PlayerAttackDamage
	if attacker.Enemy != nil {
		damage = attacker.Enemy.Damage
	}

	// Атакующий разворачивается к цели
	attacker.Facing = attacker.Pos.DeltaTo(target.Pos).PrimaryDirection()

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	logMsg := fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, target.Name)

	if died {
		logMsg += fmt.Sprintf(" %s погибает.", target.Name)
		if target.IsEnemy() {
			// Лут и удаление из чанка. Игрока не удаляем:
			// его смерть - терминальное состояние сессии.
			w.RemoveEnemy(target, RollDrop(target))
		}
	}

	return logMsg
}

// RollDrop бросает кубик по таблице лута погибшего врага.
// Возвращает предмет (с позицией врага) либо nil.
// Использует личный rand мозга врага - дроп детерминирован сидом.
func RollDrop(enemy *domain.Entity) *domain.Entity {
	if enemy.Enemy == nil || enemy.Brain == nil {
		return nil
	}
	for _, entry := range enemy.Enemy.Drops {
		if enemy.Brain.Rand.Float64() < entry.Chance {
			return domain.NewItem(entry.Kind, enemy.Pos)
		}
	}
	return nil
}
