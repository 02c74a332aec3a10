package systems

import (
	"math"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
)

// UpdateVisibility полностью пересчитывает освещение после хода.
//
// Правила:
//   - клетка освещена (lit), если ее ЕВКЛИДОВО расстояние до игрока
//     СТРОГО меньше радиуса света;
//   - освещенная клетка навсегда помечается разведанной (mapped);
//   - lit с прошлого хода гасится целиком, mapped не гасится никогда.
//
// Каждый тайл резолвит своего владельца-чанка через мир, поэтому свет
// свободно переливается через границы чанков (и лениво генерирует
// соседние чанки, когда игрок подходит к краю).
func UpdateVisibility(w *domain.World, player *domain.Entity) {
	radius := player.Player.LightRadius

	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": player.Pos.String(),
		"radius":       radius,
	})

	w.ClearLit()

	if radius <= 0 {
		fovLogger.Warn("FOV skipped for blind observer (radius <= 0).")
		return
	}

	// Целочисленная рамка перебора: потолок радиуса
	r := int(math.Ceil(radius))
	lit := 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := player.Pos.Shift(domain.Delta{Dx: dx, Dy: dy})
			if p.DistanceTo(player.Pos) < radius {
				w.MarkLit(p)
				lit++
			}
		}
	}

	fovLogger.WithField("lit_tiles", lit).Debug("FOV recalculated.")
}

// RevealArea помечает разведанной (но не освещенной) область вокруг
// точки. Эффект обрывка карты.
func RevealArea(w *domain.World, center domain.Position, radius float64) {
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := center.Shift(domain.Delta{Dx: dx, Dy: dy})
			if p.DistanceTo(center) < radius {
				w.MarkMapped(p)
			}
		}
	}
}
