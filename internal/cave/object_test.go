package cave

import "testing"

func TestCapabilityFlags(t *testing.T) {
	tests := []struct {
		obj                                               Object
		rounded, explodable, consumable, fallable, animat bool
	}{
		{ObjSpace, false, false, true, false, false},
		{ObjDirt, false, false, true, false, false},
		{ObjBrickWall, true, false, true, false, false},
		{ObjSteelWall, false, false, false, false, false},
		{ObjPreOutBox, false, false, false, false, false},
		{ObjOutBox, false, false, false, false, true},
		{ObjBoulder, true, false, true, true, false},
		{ObjDiamond, true, false, true, true, true},
		{ObjFirefly1, false, true, true, false, true},
		{ObjButterfly3, false, true, true, false, true},
		{ObjPlayer, false, true, true, false, true},
	}
	for _, tc := range tests {
		c, ok := Caps(tc.obj)
		if !ok {
			t.Fatalf("%s missing from the type table", tc.obj)
		}
		if c.Rounded != tc.rounded || c.Explodable != tc.explodable ||
			c.Consumable != tc.consumable || c.Fallable != tc.fallable ||
			c.Animated != tc.animat {
			t.Errorf("%s flags = %+v, want rounded=%v explodable=%v consumable=%v fallable=%v animated=%v",
				tc.obj, c, tc.rounded, tc.explodable, tc.consumable, tc.fallable, tc.animat)
		}
	}
}

func TestSteelAndExitNeverConsumable(t *testing.T) {
	for _, obj := range []Object{ObjSteelWall, ObjPreOutBox, ObjOutBox} {
		c, _ := Caps(obj)
		if c.Consumable {
			t.Errorf("%s must never be consumable", obj)
		}
	}
}

func TestUnknownCode(t *testing.T) {
	if Known(Object(0x3F)) {
		t.Error("0x3F should not be in the type table")
	}
	c, ok := Caps(Object(0x3F))
	if ok || c.Consumable || c.Fallable {
		t.Error("unknown codes must answer zero-value capabilities")
	}
	if Object(0x3F).String() != "unknown" {
		t.Errorf("unknown String() = %q", Object(0x3F).String())
	}
}

func TestAnimatedFrameCounts(t *testing.T) {
	for obj, c := range capTable {
		if c.Animated && c.FrameCount < 2 {
			t.Errorf("%s is animated but has frame count %d", obj, c.FrameCount)
		}
		if !c.Animated && c.FrameCount != 1 {
			t.Errorf("%s is static but has frame count %d", obj, c.FrameCount)
		}
	}
}

func TestTileIndexSharedAcrossPhases(t *testing.T) {
	groups := [][]Object{
		{ObjFirefly1, ObjFirefly2, ObjFirefly3, ObjFirefly4},
		{ObjButterfly1, ObjButterfly2, ObjButterfly3, ObjButterfly4},
		{ObjBoulder, ObjBoulderFalling},
		{ObjDiamond, ObjDiamondFalling},
	}
	for _, group := range groups {
		first, _ := Caps(group[0])
		for _, obj := range group[1:] {
			c, _ := Caps(obj)
			if c.GID != first.GID {
				t.Errorf("%s tile index %d differs from %s's %d", obj, c.GID, group[0], first.GID)
			}
		}
	}
}

func TestPortalCycles(t *testing.T) {
	c, _ := Caps(ObjInBox)
	if c.PortalCycles <= 0 {
		t.Error("in-box must carry a finite portal cycle count")
	}
	for obj, caps := range capTable {
		if obj != ObjInBox && caps.PortalCycles != 0 {
			t.Errorf("%s should not carry portal cycles", obj)
		}
	}
}
