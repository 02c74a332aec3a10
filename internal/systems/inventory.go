package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
)

// itemEffect применяет эффект предмета при подборе.
type itemEffect func(w *domain.World, player *domain.Entity)

// Таблица эффектов по виду предмета - вместо виртуальной иерархии
// классов предметов.
var itemEffects = map[domain.ItemKind]itemEffect{
	domain.ItemBandage: func(_ *domain.World, player *domain.Entity) {
		player.Stats.Heal(domain.BandageHealAmount)
	},
	domain.ItemLanternOil: func(_ *domain.World, player *domain.Entity) {
		player.Player.LightRadius += domain.LanternOilBonus
	},
	domain.ItemTornMap: func(w *domain.World, player *domain.Entity) {
		RevealArea(w, player.Pos, domain.TornMapRevealRadius)
	},
}

// TryPickup подбирает предмет под ногами игрока, если он там есть.
// Возвращает строку для журнала либо "" (ничего не подобрано).
func TryPickup(player *domain.Entity, w *domain.World) string {
	item := w.ItemAt(player.Pos)
	if item == nil {
		return ""
	}

	w.ChunkAt(player.Pos).RemoveItem(item)
	player.Player.Inventory = append(player.Player.Inventory, item.Item.Kind)

	if effect, ok := itemEffects[item.Item.Kind]; ok {
		effect(w, player)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"item":      item.Name,
		"pos":       player.Pos.String(),
	}).Info("Item picked up.")

	return fmt.Sprintf("%s подбирает: %s.", player.Name, item.Name)
}
