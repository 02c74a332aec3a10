package engine

import (
	"delve-server/internal/domain"
	"delve-server/pkg/api"
)

// buildSnapshot собирает DTO-снимок мира вокруг игрока.
// Вызывается только под s.mu: снимок всегда видит целый ход.
func (s *GameSession) buildSnapshot(msgType string) api.ServerResponse {
	resp := api.ServerResponse{
		Type: msgType,
		Turn: s.Turn,
	}

	center := domain.ChunkIDFromPosition(s.Player.Pos)

	// Тайлы и сущности 3x3 чанков вокруг игрока.
	// Get (а не Loaded): клиенту нужна геометрия соседей, даже если
	// игрок в них еще не заходил - здесь они и генерируются лениво.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			chunk := s.World.Get(domain.ChunkID{X: center.X + dx, Y: center.Y + dy})
			s.collectChunk(chunk, &resp)
		}
	}

	resp.Player = &api.PlayerView{
		ID:            s.Player.ID,
		X:             s.Player.Pos.X,
		Y:             s.Player.Pos.Y,
		HP:            s.Player.Stats.HP,
		MaxHP:         s.Player.Stats.MaxHP,
		LightRadius:   s.Player.Player.LightRadius,
		CarryingBlock: s.Player.Player.CarryingBlock,
		IsDead:        s.Player.Stats.IsDead,
	}
	for _, kind := range s.Player.Player.Inventory {
		resp.Player.Inventory = append(resp.Player.Inventory, kind.String())
	}

	resp.Entities = append(resp.Entities, api.EntityView{
		ID:       s.Player.ID,
		Type:     s.Player.Type,
		Name:     s.Player.Name,
		Symbol:   "@",
		X:        s.Player.Pos.X,
		Y:        s.Player.Pos.Y,
		Rotation: s.Player.Facing.Rotation(),
		HP:       s.Player.Stats.HP,
		MaxHP:    s.Player.Stats.MaxHP,
	})

	resp.Logs = s.pendingLogs
	s.pendingLogs = nil

	return resp
}

// collectChunk переливает один чанк в DTO: тайлы целиком,
// сущности - только освещенные (клиент не видит сквозь тьму).
func (s *GameSession) collectChunk(chunk *domain.Chunk, resp *api.ServerResponse) {
	for y := 0; y < domain.ChunkSize; y++ {
		for x := 0; x < domain.ChunkSize; x++ {
			p := chunk.ToGlobal(domain.GridPosition{X: x, Y: y})
			resp.Tiles = append(resp.Tiles, api.TileView{
				X:        p.X,
				Y:        p.Y,
				IsWall:   chunk.GetCell(p) == domain.CellWall,
				IsLit:    chunk.IsLit(p),
				IsMapped: chunk.IsMapped(p),
			})
		}
	}

	for _, e := range chunk.Enemies {
		if !chunk.IsLit(e.Pos) {
			continue
		}
		resp.Entities = append(resp.Entities, api.EntityView{
			ID:       e.ID,
			Type:     e.Type,
			Name:     e.Name,
			Symbol:   e.Enemy.Symbol,
			X:        e.Pos.X,
			Y:        e.Pos.Y,
			Rotation: e.Facing.Rotation(),
			HP:       e.Stats.HP,
			MaxHP:    e.Stats.MaxHP,
		})
	}

	for _, it := range chunk.Items {
		if !chunk.IsLit(it.Pos) {
			continue
		}
		resp.Entities = append(resp.Entities, api.EntityView{
			ID:     it.ID,
			Type:   it.Type,
			Name:   it.Name,
			Symbol: it.Item.Kind.Symbol(),
			X:      it.Pos.X,
			Y:      it.Pos.Y,
		})
	}
}
