package main

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mittubose/Grabby-Hand-rat-killer/catalog"
	"github.com/mittubose/Grabby-Hand-rat-killer/game"
	"github.com/mittubose/Grabby-Hand-rat-killer/system"
)

const (
	// Terminals report presses and repeats but no releases; a move holds until this long after the last repeat
	moveHold  = 150 * time.Millisecond
	turnStep  = math.Pi / 16
	pitchStep = 0.1
)

// controls turns key presses into simulation actions
type controls struct {
	yaw, pitch float64
	fwd, right float64
	moveUntil  time.Time
	run        bool
	debug      bool
	frozen     bool
}

// key translates one key event; quit is set for the exit keys
func (c *controls) key(ev *tcell.EventKey, snap game.Snapshot, items []catalog.Item, now time.Time) (acts []game.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyEscape:
		switch {
		case snap.Tile != nil:
			return []game.Action{{Kind: game.ActionTileClose}}, false
		case snap.ShopOpen:
			return []game.Action{{Kind: game.ActionShop, On: false}}, false
		}
		return nil, true
	case tcell.KeyLeft:
		return c.look(c.yaw+turnStep, c.pitch), false
	case tcell.KeyRight:
		return c.look(c.yaw-turnStep, c.pitch), false
	case tcell.KeyUp:
		return c.look(c.yaw, c.pitch+pitchStep), false
	case tcell.KeyDown:
		return c.look(c.yaw, c.pitch-pitchStep), false
	case tcell.KeyF2:
		if !c.debug {
			return nil, false
		}
		c.frozen = !c.frozen
		return []game.Action{{Kind: game.ActionSystem, System: "hostile", On: !c.frozen}}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		i := int(r - '1')
		switch {
		case snap.Tile != nil:
			return []game.Action{{Kind: game.ActionTileMove, Index: i}}, false
		case snap.ShopOpen && i < len(items):
			return []game.Action{{Kind: game.ActionBuy, ItemID: items[i].ID}}, false
		}
		return nil, false
	}

	switch r {
	case 'q':
		return nil, true
	case 'w':
		return c.move(1, 0, now), false
	case 's':
		return c.move(-1, 0, now), false
	case 'a':
		return c.move(0, -1, now), false
	case 'd':
		return c.move(0, 1, now), false
	case ' ':
		return []game.Action{{Kind: game.ActionJump}}, false
	case 'r':
		c.run = !c.run
		return []game.Action{{Kind: game.ActionRun, On: c.run}}, false
	case 'j':
		return []game.Action{{Kind: game.ActionShoot, Hand: system.HandLeft}}, false
	case 'k':
		return []game.Action{{Kind: game.ActionShoot, Hand: system.HandRight}}, false
	case 'J':
		return []game.Action{{Kind: game.ActionRelease, Hand: system.HandLeft}}, false
	case 'K':
		return []game.Action{{Kind: game.ActionRelease, Hand: system.HandRight}}, false
	case 'e':
		return []game.Action{{Kind: game.ActionInteract}}, false
	case 'b':
		return []game.Action{{Kind: game.ActionShop, On: !snap.ShopOpen}}, false
	case 'h':
		return c.drink(snap, items), false
	case 'p':
		return []game.Action{{Kind: game.ActionPause}}, false
	}
	return nil, false
}

// idle stops movement once the hold window lapses
func (c *controls) idle(now time.Time) []game.Action {
	if (c.fwd == 0 && c.right == 0) || now.Before(c.moveUntil) {
		return nil
	}
	c.fwd, c.right = 0, 0
	return []game.Action{{Kind: game.ActionMove}}
}

func (c *controls) move(fwd, right float64, now time.Time) []game.Action {
	c.fwd, c.right = fwd, right
	c.moveUntil = now.Add(moveHold)
	return []game.Action{{Kind: game.ActionMove, Forward: fwd, Right: right}}
}

func (c *controls) look(yaw, pitch float64) []game.Action {
	c.yaw = math.Remainder(yaw, 2*math.Pi)
	c.pitch = max(-1.5, min(1.5, pitch))
	return []game.Action{{Kind: game.ActionLook, Yaw: c.yaw, Pitch: c.pitch}}
}

// drink uses the smallest potion in stock
func (c *controls) drink(snap game.Snapshot, items []catalog.Item) []game.Action {
	for _, it := range items {
		if it.Kind == catalog.KindHealth && snap.Player.Potions[it.ID] > 0 {
			return []game.Action{{Kind: game.ActionUse, ItemID: it.ID}}
		}
	}
	return nil
}
