package seabattle

import (
	"testing"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

func TestRenderASCII(t *testing.T) {
	b := core.NewBoard(4)
	if err := b.PlaceVessel(core.NewVessel(core.C(0, 0), 2, core.Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	if _, err := b.ResolveShot(core.C(0, 0)); err != nil {
		t.Fatalf("ResolveShot() failed: %v", err)
	}
	if _, err := b.ResolveShot(core.C(2, 2)); err != nil {
		t.Fatalf("ResolveShot() failed: %v", err)
	}

	revealed := "    1   2   3   4\n" +
		" 1 |X| |■| |O| |O|\n" +
		" 2 |O| |O| |O| |O|\n" +
		" 3 |O| |O| |T| |O|\n" +
		" 4 |O| |O| |O| |O|"
	if got := RenderASCII(b, true); got != revealed {
		t.Errorf("RenderASCII(reveal) =\n%s\nexpected\n%s", got, revealed)
	}

	b.SetConcealed(true)
	concealed := "    1   2   3   4\n" +
		" 1 |X| |O| |O| |O|\n" +
		" 2 |O| |O| |O| |O|\n" +
		" 3 |O| |O| |T| |O|\n" +
		" 4 |O| |O| |O| |O|"
	if got := RenderASCII(b, false); got != concealed {
		t.Errorf("RenderASCII(concealed) =\n%s\nexpected\n%s", got, concealed)
	}
	if got := RenderASCII(b, true); got != revealed {
		t.Errorf("reveal should ignore concealment, got\n%s", got)
	}
}

func TestRenderASCIISunkHalo(t *testing.T) {
	b := core.NewBoard(4)
	if err := b.PlaceVessel(core.NewVessel(core.C(3, 3), 1, core.Vertical)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	if _, err := b.ResolveShot(core.C(3, 3)); err != nil {
		t.Fatalf("ResolveShot() failed: %v", err)
	}

	expected := "    1   2   3   4\n" +
		" 1 |O| |O| |O| |O|\n" +
		" 2 |O| |O| |O| |O|\n" +
		" 3 |O| |O| |.| |.|\n" +
		" 4 |O| |O| |.| |X|"
	if got := RenderASCII(b, true); got != expected {
		t.Errorf("RenderASCII() =\n%s\nexpected\n%s", got, expected)
	}
}
