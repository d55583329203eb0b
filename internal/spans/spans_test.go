package spans

import (
	"errors"
	"go/token"
	"testing"
)

func TestIndexOutermost(t *testing.T) {
	ix := New[string]()

	if _, ok := ix.Outermost(0); ok {
		t.Fatal("nothing was expected at pos 0 right now")
	}

	if err := ix.Add("ground", 0, 200); err != nil {
		t.Fatal(err)
	}
	if v, _ := ix.Outermost(10); v != "ground" {
		t.Fatal("ground was expected at pos 10")
	}

	spans := []struct {
		name       string
		start, end token.Pos
	}{
		{"mid1", 10, 90},
		{"mid11", 20, 30},
		{"mid12", 40, 80},
		{"mid13", 85, 88},
		{"mid2", 110, 190},
		{"mid21", 120, 130},
		{"mid211", 120, 130},
		{"right", 300, 400},
		{"right1", 310, 320},
	}
	for _, s := range spans {
		if err := ix.Add(s.name, s.start, s.end); err != nil {
			t.Fatalf("add %s: %v", s.name, err)
		}
	}
	if ix.Len() != len(spans)+1 {
		t.Fatalf("%d spans expected, got %d", len(spans)+1, ix.Len())
	}

	tests := []struct {
		name      string
		pos       token.Pos
		outermost string
		isnil     bool
	}{
		{name: "ground start", pos: 0, outermost: "ground"},
		{name: "ground end", pos: 200, outermost: "ground"},
		{name: "mid1 end", pos: 90, outermost: "ground"},
		{name: "mid11", pos: 25, outermost: "ground"},
		{name: "mid12", pos: 79, outermost: "ground"},
		{name: "mid211", pos: 125, outermost: "ground"},
		{name: "right", pos: 305, outermost: "right"},
		{name: "right1", pos: 315, outermost: "right"},
		{name: "gap", pos: 250, isnil: true},
		{name: "on-the-left", pos: -1, isnil: true},
		{name: "on-the-right", pos: 401, isnil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ix.Outermost(tt.pos)
			if ok == tt.isnil {
				t.Fatalf("unexpected lookup result at position %d: %q", tt.pos, v)
			}
			if !tt.isnil && v != tt.outermost {
				t.Fatalf("outermost span %q was expected, got %q at position %d", tt.outermost, v, tt.pos)
			}
		})
	}
}

func TestIndexRejects(t *testing.T) {
	ix := New[string]()
	if err := ix.Add("ground", 0, 200); err != nil {
		t.Fatal(err)
	}
	if err := ix.Add("mid", 10, 90); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		start, end token.Pos
		want       error
	}{
		{"crosses a top level span", 150, 300, ErrPartialOverlap},
		{"crosses a nested span", 50, 120, ErrPartialOverlap},
		{"contains a top level span", -10, 300, ErrOuterAfterInner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ix.Add(tt.name, tt.start, tt.end)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error %v was expected, got %v", tt.want, err)
			}
		})
	}

	if err := ix.Add("reversed", 30, 20); err == nil {
		t.Fatal("reversed span must be rejected")
	}
	if ix.Len() != 2 {
		t.Fatalf("rejected spans must not be counted, got %d", ix.Len())
	}
}
