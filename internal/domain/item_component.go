package domain

// ItemKind - вид подбираемого предмета.
type ItemKind uint8

const (
	// ItemBandage - бинт, лечит при подборе.
	ItemBandage ItemKind = iota
	// ItemLanternOil - масло для фонаря, увеличивает радиус света.
	ItemLanternOil
	// ItemTornMap - обрывок карты, открывает область вокруг.
	ItemTornMap
)

func (k ItemKind) String() string {
	switch k {
	case ItemBandage:
		return "Бинт"
	case ItemLanternOil:
		return "Масло для фонаря"
	default:
		return "Обрывок карты"
	}
}

// Symbol - символ для клиента.
func (k ItemKind) Symbol() string {
	switch k {
	case ItemBandage:
		return "+"
	case ItemLanternOil:
		return "*"
	default:
		return "?"
	}
}

// ItemComponent помечает сущность как лежащий на полу предмет.
type ItemComponent struct {
	Kind ItemKind `json:"kind"`
}

// AllItemKinds - порядок важен для детерминированного выбора при спавне.
var AllItemKinds = [3]ItemKind{ItemBandage, ItemLanternOil, ItemTornMap}
