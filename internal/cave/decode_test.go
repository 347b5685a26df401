package cave

import (
	"errors"
	"testing"
)

func TestDecodeIsPure(t *testing.T) {
	for id := 1; id <= CaveCount(); id++ {
		for diff := 1; diff <= 5; diff++ {
			a, err := Decode(id, diff)
			if err != nil {
				t.Fatalf("Decode(%d, %d) failed: %v", id, diff, err)
			}
			b, err := Decode(id, diff)
			if err != nil {
				t.Fatalf("second Decode(%d, %d) failed: %v", id, diff, err)
			}
			if !a.Grid.Equal(b.Grid) {
				t.Errorf("Decode(%d, %d) not deterministic: grids differ", id, diff)
			}
			if a.Info != b.Info {
				t.Errorf("Decode(%d, %d) not deterministic: info differs", id, diff)
			}
		}
	}
}

func TestDecodeBorderInvariant(t *testing.T) {
	for id := 1; id <= CaveCount(); id++ {
		for diff := 1; diff <= 5; diff++ {
			d, err := Decode(id, diff)
			if err != nil {
				t.Fatalf("Decode(%d, %d) failed: %v", id, diff, err)
			}
			g := d.Grid
			for row := 0; row < g.H; row++ {
				for col := 0; col < g.W; col++ {
					if g.IsBorder(col, row) && g.At(col, row) != ObjSteelWall {
						t.Fatalf("cave %d diff %d: border cell (%d,%d) holds %s, want steel wall",
							id, diff, col, row, g.At(col, row))
					}
				}
			}
		}
	}
}

func TestDecodeConservation(t *testing.T) {
	d, err := Decode(1, 1)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	stats := d.Grid.Statistics()
	sum := 0
	for _, n := range stats {
		sum += n
	}
	interior := (Width - 2) * (Height - 2)
	if sum != interior {
		t.Errorf("histogram sum = %d, want %d interior cells", sum, interior)
	}
}

func TestDecodeSelectsDifficultySeed(t *testing.T) {
	// Different difficulty seeds must give different random fills for
	// the Intro cave, whose five seeds all differ.
	a, err := Decode(1, 1)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	b, err := Decode(1, 5)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if a.Grid.Equal(b.Grid) {
		t.Error("difficulty 1 and 5 produced identical grids")
	}
}

func TestDecodeIntroFixedFeatures(t *testing.T) {
	// The Intro cave's instruction stream places the portal at (3,2),
	// the pre-out-box at (38,16) and two 30-cell brick lines.
	d, err := Decode(1, 1)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	g := d.Grid
	if got := g.At(3, 2); got != ObjInBox {
		t.Errorf("cell (3,2) = %s, want in-box", got)
	}
	if got := g.At(38, 16); got != ObjPreOutBox {
		t.Errorf("cell (38,16) = %s, want pre-out-box", got)
	}
	for i := 0; i < 30; i++ {
		if got := g.At(1+i, 7); got != ObjBrickWall {
			t.Fatalf("brick line cell (%d,7) = %s, want brick wall", 1+i, got)
		}
	}
}

func TestDecodeInvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		caveID  int
		diff    int
		wantErr error
	}{
		{"cave zero", 0, 1, ErrInvalidCaveID},
		{"cave past table", CaveCount() + 1, 1, ErrInvalidCaveID},
		{"negative cave", -3, 1, ErrInvalidCaveID},
		{"difficulty zero", 1, 0, ErrInvalidDifficulty},
		{"difficulty six", 1, 6, ErrInvalidDifficulty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.caveID, tc.diff)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Decode(%d, %d) = %v, want %v", tc.caveID, tc.diff, err, tc.wantErr)
			}
		})
	}
}

// testHeader builds a minimal valid header with no random fill.
func testHeader() []byte {
	h := make([]byte, headerLen)
	h[offDiamondsMin] = 1
	h[offTime] = 10
	return h
}

func TestDecodeBytesMissingSentinel(t *testing.T) {
	data := append(testHeader(),
		0x01, 0x05, 0x05, // place dirt, then the stream just stops
	)
	_, err := DecodeBytes(data, 1)
	if !errors.Is(err, ErrMalformedCave) {
		t.Errorf("missing sentinel: got %v, want ErrMalformedCave", err)
	}
}

func TestDecodeBytesTruncatedInstruction(t *testing.T) {
	data := append(testHeader(),
		0x42, 0x01, // line instruction needs 5 bytes, only 2 present
	)
	_, err := DecodeBytes(data, 1)
	if !errors.Is(err, ErrMalformedCave) {
		t.Errorf("truncated instruction: got %v, want ErrMalformedCave", err)
	}
}

func TestDecodeBytesGeometryOutOfBounds(t *testing.T) {
	data := append(testHeader(),
		// Line of 30 boulders heading right from column 20 runs off
		// the 40-wide grid.
		0x50, 0x14, 0x05, 0x1E, 0x02,
		0xFF,
	)
	_, err := DecodeBytes(data, 1)
	if !errors.Is(err, ErrMalformedCave) {
		t.Errorf("out-of-bounds line: got %v, want ErrMalformedCave", err)
	}
}

func TestDecodeLineInstruction(t *testing.T) {
	// Opcode 0x42 is kind 1 (line) with object code 0x02 (brick wall).
	// Walk all eight compass directions from a centre start.
	dirs := []struct {
		dir        Compass
		dcol, drow int
	}{
		{CompassUp, 0, -1},
		{CompassUpRight, 1, -1},
		{CompassRight, 1, 0},
		{CompassDownRight, 1, 1},
		{CompassDown, 0, 1},
		{CompassDownLeft, -1, 1},
		{CompassLeft, -1, 0},
		{CompassUpLeft, -1, -1},
	}
	for _, tc := range dirs {
		data := append(testHeader(),
			0x42, 20, 12, 5, byte(tc.dir),
			0xFF,
		)
		d, err := DecodeBytes(data, 1)
		if err != nil {
			t.Fatalf("dir %d: decode failed: %v", tc.dir, err)
		}
		col, row := 20, 10 // stored row 12 minus the 2-row bias
		for i := 0; i < 5; i++ {
			if got := d.Grid.At(col, row); got != ObjBrickWall {
				t.Fatalf("dir %d: cell (%d,%d) = %s, want brick wall", tc.dir, col, row, got)
			}
			col += tc.dcol
			row += tc.drow
		}
	}
}

func TestDecodeRectInstructions(t *testing.T) {
	data := append(testHeader(),
		// Kind 2: brick-bordered 6x4 rectangle with space interior.
		0x82, 5, 6, 6, 4, 0x00,
		// Kind 3: solid 3x3 diamond block.
		0xD4, 20, 6, 3, 3,
		0xFF,
	)
	d, err := DecodeBytes(data, 1)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	g := d.Grid

	for row := 4; row < 8; row++ {
		for col := 5; col < 11; col++ {
			onEdge := row == 4 || row == 7 || col == 5 || col == 10
			want := ObjSpace
			if onEdge {
				want = ObjBrickWall
			}
			if got := g.At(col, row); got != want {
				t.Fatalf("rect cell (%d,%d) = %s, want %s", col, row, got, want)
			}
		}
	}
	for row := 4; row < 7; row++ {
		for col := 20; col < 23; col++ {
			if got := g.At(col, row); got != ObjDiamond {
				t.Fatalf("solid rect cell (%d,%d) = %s, want diamond", col, row, got)
			}
		}
	}
}

func TestRandomFillCumulativeOrdering(t *testing.T) {
	// Build a header with known thresholds and replay the PRNG to
	// verify the first-bound-wins rule with dirt fallback.
	h := testHeader()
	h[offSeeds] = 0x2A
	objs := []Object{ObjSpace, ObjBoulder, ObjDiamond, ObjAmoeba}
	thresholds := []uint8{40, 60, 20, 10}
	for i := 0; i < 4; i++ {
		h[offRandomObjs+i] = uint8(objs[i])
		h[offThresholds+i] = thresholds[i]
	}
	data := append(h, 0xFF)

	d, err := DecodeBytes(data, 1)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	rng := NewRNG(0x2A)
	for row := 1; row < Height-1; row++ {
		for col := 1; col < Width-1; col++ {
			v := int(rng.NextByte())
			want := ObjDirt
			bound := 0
			for i := 0; i < 4; i++ {
				bound += int(thresholds[i])
				if v < bound {
					want = objs[i]
					break
				}
			}
			if got := d.Grid.At(col, row); got != want {
				t.Fatalf("cell (%d,%d): draw %d gave %s, want %s", col, row, v, got, want)
			}
		}
	}
}

func TestCaveNames(t *testing.T) {
	if CaveName(1) != "Intro" {
		t.Errorf("CaveName(1) = %q, want Intro", CaveName(1))
	}
	if CaveName(0) != "" || CaveName(CaveCount()+1) != "" {
		t.Error("out-of-range cave names should be empty")
	}
}
