package domain

import (
	"math/rand"

	"github.com/google/uuid"
)

// --- КОМПОНЕНТЫ ---

// StatsComponent - здоровье сущности.
type StatsComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`
}

// PlayerComponent - данные, которые есть ТОЛЬКО у игрока.
type PlayerComponent struct {
	// LightRadius - текущий радиус света (может расти от предметов).
	LightRadius float64 `json:"lightRadius"`
	// CarryingBlock - несет ли игрок выломанный блок стены.
	CarryingBlock bool `json:"carryingBlock"`
	// Inventory - что игрок подобрал за сессию (для клиента).
	Inventory []ItemKind `json:"inventory"`
}

// BrainKind - стратегия поведения врага.
type BrainKind uint8

const (
	// BrainWanderer - случайное блуждание.
	BrainWanderer BrainKind = iota
	// BrainStalker - блуждание, переходящее в преследование
	// игрока внутри агро-радиуса.
	BrainStalker
)

// BrainComponent - мозг врага.
// Хранится РЯДОМ с врагом в той же структуре (а не объектом с
// обратной ссылкой на владельца): действующий враг передается
// в функцию решения явно, цикла владения нет.
type BrainComponent struct {
	Kind BrainKind
	// Rand - личный источник случайности мозга.
	// Сидится при спавне из генератора чанка, чтобы весь забег
	// воспроизводился от одного мастер-сида.
	Rand *rand.Rand
}

// EnemyDescriptor - справочник вида врага.
type EnemyDescriptor struct {
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	MaxHP       int       `json:"maxHp"`
	Damage      int       `json:"damage"`
	AggroRadius int       `json:"aggroRadius"`
	Brain       BrainKind `json:"-"`
	// Drops - таблица лута: при смерти бросается кубик по каждой записи.
	Drops []DropEntry `json:"-"`
}

// DropEntry - одна строка таблицы лута.
type DropEntry struct {
	Kind   ItemKind
	Chance float64
}

// --- СУЩНОСТЬ ---

// Entity - единая структура для игрока, врага и лежащего предмета.
// Различие - тег Type плюс набор заполненных компонентов
// (вместо иерархии наследования).
type Entity struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Name   string    `json:"name"`
	Pos    Position  `json:"pos"`
	Facing Direction `json:"facing"`

	Stats  *StatsComponent  `json:"stats,omitempty"`
	Player *PlayerComponent `json:"player,omitempty"`
	Brain  *BrainComponent  `json:"-"`
	Enemy  *EnemyDescriptor `json:"enemy,omitempty"`
	Item   *ItemComponent   `json:"item,omitempty"`
}

// NewPlayer создает игрока в указанной позиции.
func NewPlayer(pos Position) *Entity {
	return &Entity{
		ID:     uuid.NewString(),
		Type:   EntityTypePlayer,
		Name:   "Делвер",
		Pos:    pos,
		Facing: DirDown,
		Stats:  &StatsComponent{HP: PlayerMaxHP, MaxHP: PlayerMaxHP},
		Player: &PlayerComponent{LightRadius: DefaultLightRadius},
	}
}

// NewEnemy создает врага по справочнику вида.
// brainSeed задает личный rand мозга (детерминизм от мастер-сида).
func NewEnemy(desc *EnemyDescriptor, pos Position, brainSeed int64) *Entity {
	return &Entity{
		ID:     uuid.NewString(),
		Type:   EntityTypeEnemy,
		Name:   desc.Name,
		Pos:    pos,
		Facing: DirDown,
		Stats:  &StatsComponent{HP: desc.MaxHP, MaxHP: desc.MaxHP},
		Enemy:  desc,
		Brain: &BrainComponent{
			Kind: desc.Brain,
			Rand: rand.New(rand.NewSource(brainSeed)),
		},
	}
}

// NewItem создает лежащий на полу предмет.
func NewItem(kind ItemKind, pos Position) *Entity {
	return &Entity{
		ID:   uuid.NewString(),
		Type: EntityTypeItem,
		Name: kind.String(),
		Pos:  pos,
		Item: &ItemComponent{Kind: kind},
	}
}

// IsPlayer - короткая проверка тега.
func (e *Entity) IsPlayer() bool { return e.Type == EntityTypePlayer }

// IsEnemy - короткая проверка тега.
func (e *Entity) IsEnemy() bool { return e.Type == EntityTypeEnemy }
