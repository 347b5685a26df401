package cave

import "sort"

// Step advances the world by one discrete tick. The five phases run in a
// fixed order; changing it changes which sprites observe already-updated
// neighbors within the tick, so replays would diverge.
func (w *World) Step(dir Direction) {
	w.tick++

	if w.cleared || w.dead {
		return
	}

	portal := w.findObj(ObjInBox)
	if portal != nil && portal.CyclesLeft == 0 {
		col, row := portal.Col, portal.Row
		w.remove(portal)
		caps, _ := Caps(ObjPlayer)
		w.spawn(col, row, ObjPlayer, caps)
		portal = nil
	}

	// Input is ignored while the portal is still counting down.
	if portal == nil {
		w.movePlayer(dir)
	}

	w.fallPass()
	w.animatePass()
	w.compact()

	if portal == nil {
		if w.ticksLeft > 0 {
			w.ticksLeft--
		}
		if w.ticksLeft == 0 && !w.cleared {
			w.dead = true
		}
	}

	if !w.exitOpen && w.diamonds >= w.Info.DiamondsRequired {
		w.openExit()
	}
}

// movePlayer resolves the single movement intent for this tick. Empty
// cells, dirt and diamonds permit movement (dirt and diamonds are
// consumed); an open out-box ends the cave; anything else blocks.
func (w *World) movePlayer(dir Direction) {
	player := w.Player()
	if player == nil || dir == DirNone {
		return
	}
	dcol, drow := dir.Delta()
	col, row := player.Col+dcol, player.Row+drow

	if w.isEmpty(col, row) {
		w.move(player, col, row)
		return
	}
	target := w.SpriteAt(col, row)
	if target == nil {
		return // wall cell with no sprite, blocked
	}
	switch target.Obj {
	case ObjDirt:
		w.remove(target)
		w.move(player, col, row)
	case ObjDiamond, ObjDiamondFalling:
		w.remove(target)
		w.diamonds++
		w.score += w.Info.DiamondValue
		w.move(player, col, row)
	case ObjOutBox:
		w.remove(target)
		w.move(player, col, row)
		w.cleared = true
	}
	// Any other occupant blocks; an illegal move is a silent no-op.
}

// fallPass applies gravity to every fallable sprite, visited in row-major
// order (row ascending, then column ascending).
func (w *World) fallPass() {
	fallable := make([]*Sprite, 0, len(w.sprites))
	for _, s := range w.sprites {
		if !s.dead && s.Caps.Fallable {
			fallable = append(fallable, s)
		}
	}
	sort.Slice(fallable, func(i, j int) bool {
		if fallable[i].Row != fallable[j].Row {
			return fallable[i].Row < fallable[j].Row
		}
		return fallable[i].Col < fallable[j].Col
	})

	for _, s := range fallable {
		if s.dead {
			continue // destroyed earlier in this pass
		}
		w.fallOne(s)
	}
}

// fallOne applies one tick of gravity to a single sprite.
func (w *World) fallOne(s *Sprite) {
	if w.isEmpty(s.Col, s.Row+1) {
		s.State = Falling
		w.move(s, s.Col, s.Row+1)
		return
	}

	under := w.SpriteAt(s.Col, s.Row+1)
	underCaps := Capabilities{}
	if under != nil {
		underCaps = under.Caps
	}

	switch {
	case underCaps.Rounded:
		// Diagonal slide-off. Left is always tried before right.
		if w.isEmpty(s.Col-1, s.Row) && w.isEmpty(s.Col-1, s.Row+1) {
			s.State = Falling
			w.move(s, s.Col-1, s.Row)
			return
		}
		if w.isEmpty(s.Col+1, s.Row) && w.isEmpty(s.Col+1, s.Row+1) {
			s.State = Falling
			w.move(s, s.Col+1, s.Row)
			return
		}
		s.State = Resting
	case underCaps.Explodable && s.State == Falling:
		w.explode(under)
	default:
		s.State = Resting
	}
}

// explode blows up a victim: every consumable occupant of the 3x3 area
// centred on it is destroyed and replaced by an explosion-phase sprite.
// Butterfly explosions decay to diamonds, all others to space.
func (w *World) explode(victim *Sprite) {
	phase := ObjExplodeToSpace1
	if IsButterfly(victim.Obj) {
		phase = ObjExplodeToDiamond1
	}
	caps, _ := Caps(phase)

	for row := victim.Row - 1; row <= victim.Row+1; row++ {
		for col := victim.Col - 1; col <= victim.Col+1; col++ {
			if !w.Grid.InBounds(col, row) || w.Grid.IsBorder(col, row) {
				continue
			}
			if occ := w.SpriteAt(col, row); occ != nil {
				if !occ.Caps.Consumable {
					continue
				}
				if occ.Obj == ObjPlayer {
					w.dead = true
				}
				w.remove(occ)
			}
			w.spawn(col, row, phase, caps)
		}
	}
}

// animatePass advances every animated sprite's frame counter. On cycle
// wraparound, finite cycle counters tick down; exhausted explosion phases
// resolve to their terminal object, exhausted portals simply freeze and
// wait for entry resolution on the next tick.
func (w *World) animatePass() {
	for _, s := range w.sprites {
		if s.dead || !s.Caps.Animated || s.CyclesLeft == 0 {
			continue
		}
		s.Frame = (s.Frame + 1) % s.Caps.FrameCount
		if s.Frame != 0 {
			continue
		}
		if s.CyclesLeft > 0 {
			s.CyclesLeft--
		}
		if s.CyclesLeft == 0 && isExplosion(s.Obj) {
			w.resolveExplosion(s)
		}
	}
}

// resolveExplosion replaces a decayed explosion sprite with its terminal
// object: a diamond for butterfly remains, empty space otherwise.
func (w *World) resolveExplosion(s *Sprite) {
	col, row := s.Col, s.Row
	toDiamond := s.Obj >= ObjExplodeToDiamond1 && s.Obj <= ObjExplodeToDiamond5
	w.remove(s)
	if toDiamond {
		caps, _ := Caps(ObjDiamond)
		w.spawn(col, row, ObjDiamond, caps)
	}
}

// openExit flips every pre-out-box to a flashing open out-box once the
// diamond quota is met.
func (w *World) openExit() {
	w.exitOpen = true
	for _, s := range w.sprites {
		if s.dead || s.Obj != ObjPreOutBox {
			continue
		}
		caps, _ := Caps(ObjOutBox)
		s.Obj = ObjOutBox
		s.Caps = caps
		s.Frame = 0
		s.CyclesLeft = -1
		w.Grid.Set(s.Col, s.Row, ObjOutBox)
	}
}
