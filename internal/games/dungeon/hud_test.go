package dungeon

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/events"
)

func TestHeartFor(t *testing.T) {
	tests := []struct {
		health int
		want   [HeartSlots]Heart
	}{
		{6, [HeartSlots]Heart{HeartFull, HeartFull, HeartFull}},
		{5, [HeartSlots]Heart{HeartFull, HeartFull, HeartHalf}},
		{3, [HeartSlots]Heart{HeartFull, HeartHalf, HeartEmpty}},
		{1, [HeartSlots]Heart{HeartHalf, HeartEmpty, HeartEmpty}},
		{0, [HeartSlots]Heart{HeartEmpty, HeartEmpty, HeartEmpty}},
		{10, [HeartSlots]Heart{HeartFull, HeartFull, HeartFull}},
	}
	for _, tt := range tests {
		var got [HeartSlots]Heart
		for i := range got {
			got[i] = HeartFor(tt.health, i)
		}
		if got != tt.want {
			t.Errorf("health %d: hearts = %v, want %v", tt.health, got, tt.want)
		}
	}
}

func TestHUDFollowsEvents(t *testing.T) {
	bus := events.NewBus()
	hud := NewHUD(bus, 6)

	if hud.Coins != "0" {
		t.Errorf("coins = %q, want 0", hud.Coins)
	}

	bus.Publish(PlayerCoinsChanged{Coins: 12345})
	if hud.Coins != "12,345" {
		t.Errorf("coins = %q, want 12,345", hud.Coins)
	}

	bus.Publish(PlayerHealthChanged{Health: 3})
	if hud.Hearts[1] != HeartHalf || hud.Hearts[2] != HeartEmpty {
		t.Errorf("hearts = %v after health 3", hud.Hearts)
	}

	hud.Close()
	bus.Publish(PlayerCoinsChanged{Coins: 1})
	if hud.Coins != "12,345" {
		t.Error("closed HUD still listening")
	}
}

func TestHUDDraw(t *testing.T) {
	bus := events.NewBus()
	hud := NewHUD(bus, 5)
	bus.Publish(PlayerCoinsChanged{Coins: 1500})

	screen := core.NewScreen(40, 1)
	hud.Draw(screen, 0, 0, 40, "crypt", 3)

	var line strings.Builder
	for x := range 40 {
		line.WriteRune(screen.Get(x, 0))
	}
	out := line.String()
	for _, want := range []string{"♥", "1,500", "crypt", "enemies 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD line %q missing %q", out, want)
		}
	}
}
