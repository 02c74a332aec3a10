package domain

// Геометрия мира
const (
	// ChunkSize - сторона чанка в клетках. Мир бесконечен,
	// но нарезан на квадраты ChunkSize x ChunkSize.
	ChunkSize = 10
)

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
	EntityTypeItem   = "ITEM"
)

// Параметры генерации чанка
const (
	// ChunkWallsMin/Max - диапазон количества стен, рассыпаемых в чанке.
	// Конкретное значение модулируется шумом плотности (см. pkg/dungeon).
	ChunkWallsMin = 10
	ChunkWallsMax = 30

	// EnemiesPerChunk - сколько врагов спавнится при создании чанка.
	EnemiesPerChunk = 2

	// ItemSpawnChance - вероятность появления предмета в чанке.
	ItemSpawnChance = 0.35
)

// Параметры игрока
const (
	PlayerMaxHP = 10

	// PlayerAttackDamage - фиксированный урон игрока.
	PlayerAttackDamage = 1

	// DefaultLightRadius - стартовый радиус света.
	// Дробный порог: клетка освещена, если ЕВКЛИДОВО расстояние
	// до игрока строго меньше радиуса.
	DefaultLightRadius = 2.5

	// LanternOilBonus - прибавка к радиусу света от масла для фонаря.
	LanternOilBonus = 0.5

	// BandageHealAmount - лечение от бинта.
	BandageHealAmount = 3

	// TornMapRevealRadius - радиус, который открывает найденный обрывок карты.
	TornMapRevealRadius = 6.0
)
