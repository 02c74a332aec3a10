package agent

import (
	"encoding/json"
	"math/rand"

	"github.com/sirupsen/logrus"

	"delve-server/internal/engine"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"
)

// Bot - "игрок-компьютер" для прогона сессии без клиента
// (режим -autoplay). Шлет движку те же команды, что и живой игрок,
// через тот же ProcessCommand: удобно для смоука генерации мира
// и проверки детерминизма (сид бота выводится из сида сессии).
type Bot struct {
	Session *engine.GameSession
	rng     *rand.Rand
}

func NewBot(session *engine.GameSession) *Bot {
	return &Bot{
		Session: session,
		rng:     rand.New(rand.NewSource(session.Config.Seed + 1)),
	}
}

var botDirections = [4]string{"UP", "DOWN", "LEFT", "RIGHT"}

// Run синхронно проигрывает до maxTurns ходов или до смерти игрока.
func (b *Bot) Run(maxTurns int) {
	botLogger := logger.Log.WithField("component", "autoplay_bot")
	botLogger.WithField("max_turns", maxTurns).Info("Autoplay started")

	for i := 0; i < maxTurns; i++ {
		if b.Session.PlayerDead() {
			botLogger.WithField("turns_played", i).Info("Autoplay stopped: player died")
			return
		}

		// Иногда дергаем блок перед собой, в основном бродим
		if b.rng.Float64() < 0.1 {
			b.Session.ProcessCommand(api.ClientCommand{Action: "INTERACT"})
			continue
		}

		dir := botDirections[b.rng.Intn(len(botDirections))]
		payload, _ := json.Marshal(api.DirectionPayload{Direction: dir})
		b.Session.ProcessCommand(api.ClientCommand{Action: "MOVE", Payload: payload})
	}

	snap := b.Session.Snapshot()
	botLogger.WithFields(logrus.Fields{
		"turns_played": maxTurns,
		"player_hp":    snap.Player.HP,
		"player_pos":   [2]int{snap.Player.X, snap.Player.Y},
	}).Info("Autoplay finished")
}
