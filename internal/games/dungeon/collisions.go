package dungeon

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawler/internal/events"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// wireEvents subscribes the scene's handlers. Collision checks only publish;
// these handlers are where entity state changes.
func (g *Game) wireEvents() {
	g.bus.Subscribe(TopicDoorOpened, func(e events.Event) {
		door := e.(DoorOpened).Door
		door.Open()
		if dest, ok := g.doorIndex[door.Destination]; ok {
			dest.Open()
		}
	})

	g.bus.Subscribe(TopicPlayerHitChest, func(e events.Event) {
		g.player.CollideWithChest(e.(PlayerHitChest).Chest)
	})

	g.bus.Subscribe(TopicPlayerHitDoor, func(e events.Event) {
		g.player.CollideWithDoor(e.(PlayerHitDoor).Door)
	})

	g.bus.Subscribe(TopicEnemyHitPlayer, func(e events.Event) {
		hit := e.(EnemyHitPlayer)
		g.player.CollideWithWeapon(hit.Damage, hit.From)
	})

	g.bus.Subscribe(TopicWeaponHitEnemy, func(e events.Event) {
		hit := e.(WeaponHitEnemy)
		if hit.Enemy.HandleDamage(hit.Knife.Body.Pos, hit.Damage) {
			log.Debug("enemy slain", "dungeon", g.lvl.ID, "kind", hit.Enemy.Kind)
		}
		hit.Knife.Disable()
	})

	g.bus.Subscribe(TopicWeaponHitPlayer, func(e events.Event) {
		e.(WeaponHitPlayer).Knife.Disable()
	})

	g.bus.Subscribe(TopicWeaponHitWall, func(e events.Event) {
		e.(WeaponHitWall).Knife.Bounced()
	})

	g.bus.Subscribe(TopicWizardFireballThrown, func(e events.Event) {
		fb := e.(WizardFireballThrown).Fireball
		fb.Trail = newEmitter(fb, g.tune.lifespanMs)
		g.emitters = append(g.emitters, fb.Trail)
	})

	g.bus.Subscribe(TopicEnemyDied, func(e events.Event) {
		g.kills++
	})

	g.bus.Subscribe(TopicRoomEntered, func(e events.Event) {
		room := e.(RoomEntered).Room
		if !g.visited[room] {
			g.visited[room] = true
			log.Debug("room discovered", "dungeon", g.lvl.ID, "room", room)
		}
	})
}

// staticBlockers returns the boxes of closed doors followed by chests.
// Indexes below len(closed) are doors.
func (g *Game) staticBlockers(withChests bool) ([]physics.Box, []*Door) {
	boxes := make([]physics.Box, 0, len(g.doors)+len(g.chests))
	closed := make([]*Door, 0, len(g.doors))
	for _, d := range g.doors {
		if !d.IsOpen() {
			boxes = append(boxes, d.Bounds())
			closed = append(closed, d)
		}
	}
	if withChests {
		for _, c := range g.chests {
			boxes = append(boxes, c.Bounds())
		}
	}
	return boxes, closed
}

// moveBodies integrates every body against the walls and static blockers,
// publishing the collision events that result.
func (g *Game) moveBodies(dt float64) {
	blockers, closed := g.staticBlockers(true)
	doorsOnly := blockers[:len(closed)]

	contact := g.walls.Move(g.player.Body, dt, blockers)
	if i := contact.Blocker; i >= 0 {
		if i < len(closed) {
			g.bus.Publish(PlayerHitDoor{Door: closed[i]})
		} else {
			g.bus.Publish(PlayerHitChest{Chest: g.chests[i-len(closed)]})
		}
	}

	for _, e := range g.enemies {
		if !e.Alive() || !e.OnCamera {
			continue
		}
		if c := g.walls.Move(e.Body, dt, blockers); c.Blocked() {
			e.ChangeDirection()
		}
	}

	if g.knife.Active {
		if c := g.walls.Move(g.knife.Body, dt, doorsOnly); c.Blocked() {
			g.bus.Publish(WeaponHitWall{Knife: g.knife, Contact: c})
		}
	}

	for _, fb := range g.fireballs {
		if !fb.Active {
			continue
		}
		if c := g.walls.Move(fb.Body, dt, doorsOnly); c.Blocked() {
			g.explodeFireball(fb)
		}
	}
}

// checkOverlaps turns body overlaps into events.
func (g *Game) checkOverlaps() {
	player := g.player.Body

	if g.playerColliders {
		for _, e := range g.enemies {
			if e.Alive() && e.Body.Overlaps(player) {
				g.bus.Publish(EnemyHitPlayer{Damage: g.tune.contact, From: e.Pos()})
			}
		}
		for _, fb := range g.fireballs {
			if fb.Active && fb.Body.Overlaps(player) {
				from := fb.Body.Pos
				g.explodeFireball(fb)
				g.bus.Publish(EnemyHitPlayer{Damage: g.tune.fireball.damage, From: from})
			}
		}
	}

	if g.knife.Active {
		for _, e := range g.enemies {
			if e.Alive() && g.knife.Body.Overlaps(e.Body) {
				g.bus.Publish(WeaponHitEnemy{Knife: g.knife, Enemy: e, Damage: g.knife.Damage()})
				break
			}
		}
	}

	if g.knife.Active {
		touching := g.knife.Body.Overlaps(player)
		if !g.knife.clear {
			g.knife.clear = !touching
		} else if touching {
			g.bus.Publish(WeaponHitPlayer{Knife: g.knife})
		}
	}

	// Walking through an open door that belongs to another room enters it.
	// Doorways are rechecked once the current pan settles.
	if g.camera.Panning() {
		return
	}
	pos := g.player.Pos()
	for _, d := range g.doors {
		if d.IsOpen() && d.Room != g.currentRoom && d.Bounds().Contains(pos) {
			g.enterRoom(d.Room)
			break
		}
	}
}

// explodeFireball bursts the fireball's trail into sparks, removes the trail
// a little later, and takes the fireball out of play.
func (g *Game) explodeFireball(fb *Fireball) {
	if trail := fb.Trail; trail != nil {
		trail.Explode(g.tune.burst, fb.Body.Pos, g.tune.sparkSpeed, g.rng)
		g.clock.After(g.tune.trailMs, trail.Remove)
	}
	fb.Disable()
}
