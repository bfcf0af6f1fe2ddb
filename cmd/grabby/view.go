package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mittubose/Grabby-Hand-rat-killer/catalog"
	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/game"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

const hudRows = 4

var (
	styleBase    = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlat    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleProp    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleKey     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleRat     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDying   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleRope    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHurt    = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleLit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var staticGlyphs = map[scene.VisualKind]struct {
	r     rune
	style tcell.Style
}{
	scene.VisualWall:     {'#', styleWall},
	scene.VisualPillar:   {'O', styleWall},
	scene.VisualPlatform: {'=', stylePlat},
	scene.VisualButton:   {'B', styleProp},
	scene.VisualDoor:     {'D', styleProp},
	scene.VisualTileWall: {'T', styleProp},
	scene.VisualKey:      {'k', styleKey},
	scene.VisualPursuer:  {'M', styleBoss},
}

// view draws a top-down map of the arena with a HUD underneath
type view struct {
	screen tcell.Screen
}

// mapping converts world x/z into cells of the map area
type mapping struct {
	cols, rows int
}

func (m mapping) cell(p vmath.Vec3) (int, int) {
	half := parameter.WorldSize / 2
	x := int((p[0] + half) / parameter.WorldSize * float64(m.cols))
	y := int((p[2] + half) / parameter.WorldSize * float64(m.rows))
	return min(max(x, 0), m.cols-1), min(max(y, 0), m.rows-1)
}

func (v *view) draw(snap game.Snapshot, static *scene.Static, items []catalog.Item) {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	rows := max(h-hudRows, 1)
	m := mapping{cols: min(w, rows*2), rows: rows}

	static.Each(func(_ scene.Handle, o scene.Object) {
		g, ok := staticGlyphs[o.Kind]
		if !ok || !o.Visible {
			return
		}
		if o.Kind == scene.VisualWall {
			v.box(m, o.Box, g.r, g.style)
			return
		}
		x, y := m.cell(o.Position)
		s.SetContent(x, y, g.r, nil, g.style)
	})

	for i, p := range snap.Puzzle.SwitchPositions {
		x, y := m.cell(p)
		if snap.Puzzle.SwitchPressed[i] {
			s.SetContent(x, y, 's', nil, styleLit)
			continue
		}
		s.SetContent(x, y, 'S', nil, styleProp)
	}

	if snap.Puzzle.HasTarget {
		x, y := m.cell(snap.Puzzle.Target)
		s.SetContent(x, y, '?', nil, styleTarget)
	}
	for _, p := range snap.Projectiles {
		x, y := m.cell(p)
		s.SetContent(x, y, '*', nil, styleShot)
	}
	for _, hv := range snap.Hostiles {
		x, y := m.cell(hv.Position)
		switch {
		case hv.Dying:
			s.SetContent(x, y, 'x', nil, styleDying)
		case hv.Kind == component.HostileBoss:
			s.SetContent(x, y, 'R', nil, styleBoss)
		default:
			s.SetContent(x, y, 'r', nil, styleRat)
		}
	}

	pl := snap.Player
	px, py := m.cell(pl.Position)
	for i, on := range pl.Grappling {
		if on {
			ax, ay := m.cell(pl.Anchors[i])
			v.line(px, py, ax, ay, styleRope)
		}
	}
	ps := stylePlayer
	if len(snap.Damage) > 0 {
		ps = styleHurt
	}
	s.SetContent(px, py, facing(pl.Yaw), nil, ps)

	v.hud(snap, rows)
	if snap.Tile != nil {
		v.tile(*snap.Tile, w, h)
	} else if snap.ShopOpen {
		v.shop(snap, items, w, h)
	}
	switch {
	case snap.Result.Outcome != component.OutcomeNone:
		v.banner(strings.ToUpper(snap.Result.Outcome.String())+": "+snap.Result.Message, w, h)
	case snap.Paused:
		v.banner("PAUSED (p to resume)", w, h)
	}
	s.Show()
}

func (v *view) hud(snap game.Snapshot, top int) {
	pl := snap.Player
	v.text(0, top, styleBase, fmt.Sprintf("HP %3.0f  Score %d  Coins %d  Lv %d (%d/%d xp)  Kills %d",
		pl.Health, pl.Score, pl.Coins, pl.Level, pl.XP, pl.XPToNext, pl.Kills))
	clock := fmt.Sprintf("Time %d:%02d", snap.Countdown.Remaining/60, snap.Countdown.Remaining%60)
	if snap.Countdown.PursuerActive {
		clock = "THE MONSTER IS LOOSE"
	}
	v.text(0, top+1, styleBase, fmt.Sprintf("%s  Hand %s  Armor %s (%.0f%%)", clock, pl.Weapon, pl.Armor, pl.Defense))
	hint := snap.Puzzle.Hint
	if snap.Puzzle.CurrentID > 0 {
		hint = fmt.Sprintf("Puzzle %d: %s", snap.Puzzle.CurrentID, hint)
	}
	v.text(0, top+2, styleBase, hint)
	v.text(0, top+3, styleProp, snap.Message)
}

func (v *view) tile(t game.TileView, w, h int) {
	cw := 4
	x0 := (w - t.Size*cw) / 2
	y0 := (h - t.Size*2) / 2
	blank := t.Size*t.Size - 1
	for i, val := range t.Tiles {
		label := "    "
		if val != blank {
			label = fmt.Sprintf(" %2d ", val+1)
		}
		v.text(x0+(i%t.Size)*cw, y0+(i/t.Size)*2, styleOverlay, label)
	}
	footer := fmt.Sprintf("image %d  moves %d  keys 1-%d  esc closes", t.Image+1, t.Moves, len(t.Tiles))
	if t.Solved {
		footer = "SOLVED!"
	}
	v.text(x0, y0+t.Size*2, styleOverlay, footer)
}

func (v *view) shop(snap game.Snapshot, items []catalog.Item, w, h int) {
	x0 := max((w-56)/2, 0)
	y0 := max((h-len(items)-2)/2, 0)
	v.text(x0, y0, styleOverlay, fmt.Sprintf(" SHOP  coins %d  (number buys, esc closes) ", snap.Player.Coins))
	for i, it := range items {
		if i >= 9 {
			break
		}
		mark := " "
		switch {
		case it.ID == snap.Player.Weapon || it.ID == snap.Player.Armor:
			mark = "E"
		case snap.Player.Potions[it.ID] > 0:
			mark = fmt.Sprint(snap.Player.Potions[it.ID])
		}
		lock := ""
		if snap.Player.Level < it.UnlockLevel {
			lock = fmt.Sprintf(" (lv %d)", it.UnlockLevel)
		}
		v.text(x0, y0+1+i, styleOverlay, fmt.Sprintf(" %d %s %-22s %5d%s ", i+1, mark, it.Name, it.Cost, lock))
	}
}

func (v *view) banner(msg string, w, h int) {
	v.text(max((w-len(msg))/2, 0), h/2, styleHurt, msg)
}

func (v *view) text(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *view) box(m mapping, b vmath.AABB, r rune, style tcell.Style) {
	x0, y0 := m.cell(b.Min)
	x1, y1 := m.cell(b.Max)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (v *view) line(x0, y0, x1, y1 int, style tcell.Style) {
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		v.screen.SetContent(x, y, '.', nil, style)
	}
}

// facing picks an arrow for yaw; yaw 0 faces -z, which is up on the map
func facing(yaw float64) rune {
	arrows := []rune{'^', '<', 'v', '>'}
	i := int(math.Round(yaw/(math.Pi/2))) % 4
	if i < 0 {
		i += 4
	}
	return arrows[i]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
