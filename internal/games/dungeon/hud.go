package dungeon

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/events"
)

// HeartSlots is the number of hearts shown; each heart is two health points.
const HeartSlots = 3

// Heart is the fill of one HUD heart.
type Heart int

const (
	HeartEmpty Heart = iota
	HeartHalf
	HeartFull
)

// HUD tracks what the status line shows. It only learns about the player
// through bus events.
type HUD struct {
	Hearts [HeartSlots]Heart
	Coins  string

	printer *message.Printer
	subs    *events.Group
}

// NewHUD creates a HUD showing full health and no coins, and subscribes it.
func NewHUD(bus *events.Bus, health int) *HUD {
	h := &HUD{
		printer: message.NewPrinter(language.English),
		subs:    events.NewGroup(bus),
	}
	h.setHealth(health)
	h.setCoins(0)

	h.subs.On(TopicPlayerHealthChanged, func(e events.Event) {
		h.setHealth(e.(PlayerHealthChanged).Health)
	})
	h.subs.On(TopicPlayerCoinsChanged, func(e events.Event) {
		h.setCoins(e.(PlayerCoinsChanged).Coins)
	})
	return h
}

// Close unsubscribes the HUD.
func (h *HUD) Close() {
	h.subs.Close()
}

func (h *HUD) setHealth(health int) {
	for i := range h.Hearts {
		h.Hearts[i] = HeartFor(health, i)
	}
}

func (h *HUD) setCoins(coins int) {
	h.Coins = h.printer.Sprintf("%d", coins)
}

// HeartFor returns the fill of heart slot i for a health in half hearts.
func HeartFor(health, i int) Heart {
	half := float64(health) / 2
	switch {
	case half >= float64(i+1):
		return HeartFull
	case half == float64(i)+0.5:
		return HeartHalf
	default:
		return HeartEmpty
	}
}

// Draw renders the status line at row y, w cells wide.
func (h *HUD) Draw(dst *core.Screen, x, y, w int, room string, enemiesLeft int) {
	col := x
	for _, heart := range h.Hearts {
		switch heart {
		case HeartFull:
			dst.SetColored(col, y, '♥', core.ColorBrightRed)
		case HeartHalf:
			dst.SetColored(col, y, '♥', core.ColorRed)
			dst.SetColored(col+1, y, '·', core.ColorDarkGray)
		default:
			dst.SetColored(col, y, '♡', core.ColorDarkGray)
		}
		col += 2
	}

	col++
	dst.SetColored(col, y, '$', core.ColorBrightYellow)
	dst.DrawTextColored(col+2, y, h.Coins, core.ColorYellow)
	col += 2 + len(h.Coins) + 1

	// Room info is dropped when the view is too narrow for it
	info := fmt.Sprintf("%s  enemies %d", room, enemiesLeft)
	if ix := x + w - len(info); ix >= col {
		dst.DrawTextColored(ix, y, info, core.ColorGray)
	}
}
