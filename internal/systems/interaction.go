package systems

import (
	"fmt"

	"delve-server/internal/domain"
)

// CanInteractWith - предикат доступности взаимодействия с клеткой target.
// Истинен, только если mob - игрок, и либо он несет блок и клетка
// проходима (можно поставить), либо не несет и клетка - стена
// (можно выломать).
//
// ВАЖНО: и проверка доступности действия, и его исполнение обязаны
// звать именно этот предикат, иначе они разъедутся.
func CanInteractWith(w *domain.World, mob *domain.Entity, target domain.Position) bool {
	if !mob.IsPlayer() {
		return false
	}
	cell := w.GetCell(target)
	if mob.Player.CarryingBlock {
		return cell.Passable()
	}
	return cell == domain.CellWall
}

// ApplyInteract переключает клетку стена <-> пол против флага
// "несу блок". Возвращает строку журнала либо "" при невыполненном
// предусловии (молчаливый no-op, не ошибка).
func ApplyInteract(w *domain.World, mob *domain.Entity, target domain.Position) string {
	if !CanInteractWith(w, mob, target) {
		return ""
	}

	if mob.Player.CarryingBlock {
		if err := w.SetCell(target, domain.CellWall); err != nil {
			return ""
		}
		mob.Player.CarryingBlock = false
		return fmt.Sprintf("%s ставит блок.", mob.Name)
	}

	if err := w.SetCell(target, domain.CellEmpty); err != nil {
		return ""
	}
	mob.Player.CarryingBlock = true
	return fmt.Sprintf("%s выламывает блок из стены.", mob.Name)
}
