package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/engine/handlers/actions"
	"delve-server/internal/network"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
	"delve-server/pkg/dungeon"
	"delve-server/pkg/logger"
)

// GameSession - одна игровая сессия: мир, игрок и машина ходов.
//
// Модель строго пошаговая и синхронная: один вызов ProcessCommand
// выполняет ПОЛНЫЙ цикл хода (действие игрока -> действия всех
// активных врагов -> подбор предмета -> пересчет света) атомарно.
// Наружу никогда не видно наполовину примененного хода.
type GameSession struct {
	mu sync.Mutex

	Config Config
	World  *domain.World
	Player *domain.Entity
	Turn   int

	Hub *network.Broadcaster

	handlers    map[domain.ActionType]handlers.HandlerFunc
	pendingLogs []api.LogEntry
}

// playerStart - стартовая клетка игрока: западные "ворота" чанка
// (0,0). Генератор гарантирует ее проходимость.
var playerStart = domain.Position{X: 0, Y: domain.ChunkSize / 2}

// NewSession создает сессию. Детерминирована сидом: два мира
// с одинаковым cfg.Seed поклеточно идентичны.
func NewSession(cfg Config) *GameSession {
	factory := dungeon.NewChunkFactory(cfg.Seed)
	world := domain.NewWorld(cfg.Seed, factory.Build)
	player := domain.NewPlayer(playerStart)

	s := &GameSession{
		Config:   cfg,
		World:    world,
		Player:   player,
		Hub:      network.NewBroadcaster(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()

	// Начальное освещение, чтобы первый INIT-снимок был не черным
	systems.UpdateVisibility(world, player)

	logger.Log.WithFields(logrus.Fields{
		"seed": cfg.Seed,
	}).Info("Game session created")

	return s
}

func (s *GameSession) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionInteract] = handlers.WithEmptyPayload(actions.HandleInteract)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
}

// ProcessCommand принимает одну команду клиента и прогоняет полный ход.
// Возвращает снимок мира ПОСЛЕ хода (он же уходит в Hub).
func (s *GameSession) ProcessCommand(cmd api.ClientCommand) api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	actionType := domain.ParseAction(cmd.Action)

	// INIT - не ход, просто снимок текущего состояния
	if actionType == domain.ActionInit {
		return s.buildSnapshot("INIT")
	}

	if actionType == domain.ActionUnknown {
		s.appendLog("Неизвестная команда: "+cmd.Action, "ERROR")
		return s.buildSnapshot("UPDATE")
	}

	// Смерть игрока - терминальное состояние, мир заморожен.
	// Коллаборатор предлагает рестарт (новая сессия, свежий сид).
	if s.Player.Stats.IsDead {
		return s.buildSnapshot("UPDATE")
	}

	// --- Фаза игрока ---
	if h, ok := s.handlers[actionType]; ok {
		res, err := h(handlers.Context{World: s.World, Actor: s.Player}, cmd.Payload)
		if err != nil {
			s.appendLog(err.Error(), "ERROR")
		} else if res.Msg != "" {
			s.appendLog(res.Msg, res.MsgType)
		}
	} else {
		s.appendLog("Команда недоступна: "+actionType.String(), "ERROR")
		return s.buildSnapshot("UPDATE")
	}

	// --- Фаза врагов ---
	// Враги ходят ПОСЛЕ полного действия игрока: реагируют на его
	// новую позицию, никогда на устаревшую.
	s.runEnemyPhase()

	// --- Подбор предмета под ногами ---
	if msg := systems.TryPickup(s.Player, s.World); msg != "" {
		s.appendLog(msg, "INFO")
	}

	// --- Пересчет видимости ---
	systems.UpdateVisibility(s.World, s.Player)

	s.Turn++

	snap := s.buildSnapshot("UPDATE")
	s.Hub.Broadcast(snap)
	return snap
}

// PlayerDead - терминальное состояние сессии (не ошибка).
func (s *GameSession) PlayerDead() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Player.Stats.IsDead
}

// Snapshot возвращает консистентный снимок для рендера без хода.
func (s *GameSession) Snapshot() api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildSnapshot("UPDATE")
}

// appendLog добавляет запись в журнал, уходящий со следующим снимком.
func (s *GameSession) appendLog(text, msgType string) {
	s.pendingLogs = append(s.pendingLogs, api.LogEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	})
}
