package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionAttack
	ActionInteract
	ActionWait
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"MOVE":     ActionMove,
	"ATTACK":   ActionAttack,
	"INTERACT": ActionInteract,
	"WAIT":     ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:     "INIT",
	ActionMove:     "MOVE",
	ActionAttack:   "ATTACK",
	ActionInteract: "INTERACT",
	ActionWait:     "WAIT",
}

// ParseAction конвертирует строку из JSON в ActionType.
func ParseAction(s string) ActionType {
	// Нечувствительно к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// GameAction - одно конкретное действие одной сущности.
// Эфемерный value-object: создается на каждое решение заново,
// исполняется немедленно и нигде не хранится.
type GameAction struct {
	Type  ActionType
	Actor *Entity

	// Destination - куда идти (Move).
	Destination Position
	// Target - кого бить (Attack).
	Target *Entity
	// Direction - куда повернуться / в какую сторону взаимодействовать.
	Direction Direction
}

// MoveAction - шаг в клетку dest с поворотом в dir.
func MoveAction(actor *Entity, dest Position, dir Direction) *GameAction {
	return &GameAction{Type: ActionMove, Actor: actor, Destination: dest, Direction: dir}
}

// AttackAction - удар по цели.
func AttackAction(actor *Entity, target *Entity, dir Direction) *GameAction {
	return &GameAction{Type: ActionAttack, Actor: actor, Target: target, Direction: dir}
}

// InteractAction - взять/поставить блок в направлении dir.
func InteractAction(actor *Entity, target Position, dir Direction) *GameAction {
	return &GameAction{Type: ActionInteract, Actor: actor, Destination: target, Direction: dir}
}
