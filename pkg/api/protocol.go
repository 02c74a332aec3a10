package api

import (
	"encoding/json"
	"errors"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет клиенту:
// полный "снимок" мира, видимого игроку, после каждого завершенного хода.
// Снимок ВСЕГДА консистентен: пока ход не доигран до конца, наружу
// ничего не уходит.
type ServerResponse struct {
	// Type - тип сообщения: "INIT" при подключении, дальше "UPDATE".
	Type string `json:"type"`

	// Turn - номер завершенного хода.
	Turn int `json:"turn"`

	// Tiles - тайлы из чанков вокруг игрока (3x3 чанка).
	// Клиент рендерит lit ярко, mapped-но-не-lit тускло,
	// остальное не рендерит вовсе.
	Tiles []TileView `json:"tiles,omitempty"`

	// Entities - видимые (освещенные) сущности.
	Entities []EntityView `json:"entities,omitempty"`

	// Player - состояние игрока.
	Player *PlayerView `json:"player,omitempty"`

	// Logs - новые записи журнала с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// TileView - DTO одного тайла.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// IsWall - true для непроходимого препятствия.
	IsWall bool `json:"isWall"`

	// IsLit - тайл в текущем радиусе света. Рендерится ярко.
	IsLit bool `json:"isLit"`

	// IsMapped - тайл когда-либо был освещен ("туман войны").
	// IsMapped без IsLit рендерится тускло.
	IsMapped bool `json:"isMapped"`
}

// EntityView - DTO игровой сущности.
type EntityView struct {
	ID     string `json:"id"`
	Type   string `json:"type"` // PLAYER, ENEMY, ITEM
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	X int `json:"x"`
	Y int `json:"y"`

	// Rotation - поворот спрайта по направлению взгляда, в градусах.
	Rotation int `json:"rotation"`

	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`
}

// PlayerView - состояние игрока для HUD.
type PlayerView struct {
	ID            string   `json:"id"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
	HP            int      `json:"hp"`
	MaxHP         int      `json:"maxHp"`
	LightRadius   float64  `json:"lightRadius"`
	CarryingBlock bool     `json:"carryingBlock"`
	Inventory     []string `json:"inventory"`
	IsDead        bool     `json:"isDead"`
}

// LogEntry - одна запись игрового журнала.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
// Одна команда = одно логическое событие = один полный ход.
type ClientCommand struct {
	// Action - название действия (MOVE, INTERACT, WAIT, INIT).
	Action string `json:"action"`

	// Payload - JSON с данными действия, структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// Validator реализуется payload-структурами, которым нужна
// проверка входных данных до вызова логики.
type Validator interface {
	Validate() error
}

// --- Payloads ---

// DirectionPayload - для действий с направлением (MOVE, INTERACT).
type DirectionPayload struct {
	// Direction - "UP" | "DOWN" | "LEFT" | "RIGHT".
	Direction string `json:"direction"`
}

// Validate проверяет, что направление - одно из четырех кардинальных.
func (p DirectionPayload) Validate() error {
	switch p.Direction {
	case "UP", "DOWN", "LEFT", "RIGHT":
		return nil
	}
	return errors.New("direction must be one of UP, DOWN, LEFT, RIGHT")
}
