package cave

// A cave description is a terse byte-coded blob: a 32-byte header of fixed
// offset scalar fields followed by a drawing-instruction stream terminated
// by 0xFF. Header layout (offsets in hex):
//
//	00       cave identifier
//	01-02    diamonds required (max/min of the difficulty range)
//	03       time in seconds
//	04-08    five difficulty-indexed random seeds
//	09-0D    five difficulty-indexed diamond point values
//	0E-17    reserved timing fields
//	18-1B    four object codes for the random fill, priority order
//	1C-1F    four probability values, summed cumulatively during the fill
//	20..     instruction stream, 0xFF sentinel
const (
	offCaveID       = 0x00
	offDiamondsMax  = 0x01
	offDiamondsMin  = 0x02
	offTime         = 0x03
	offSeeds        = 0x04
	offDiamondVals  = 0x09
	offRandomObjs   = 0x18
	offThresholds   = 0x1C
	offInstructions = 0x20
)

// headerLen is the fixed byte count before the instruction stream.
const headerLen = offInstructions

// caveDef pairs a display name with the raw byte-coded description.
type caveDef struct {
	name string
	data []byte
}

// builtinCaves is the fixed cave table. Identifiers passed to Decode are
// 1-based indexes into this slice.
var builtinCaves = []caveDef{
	{
		// The classic opener: dirt field seeded with boulders and
		// diamonds, two brick shelves, portal top-left, exit
		// bottom-right.
		name: "Intro",
		data: []byte{
			0x01, 0x14, 0x0A, 0x0F, 0x0A, 0x0B, 0x0C, 0x0D,
			0x0E, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C, 0x96, 0x6E,
			0x46, 0x28, 0x1E, 0x08, 0x0B, 0x09, 0xD4, 0x20,
			0x00, 0x10, 0x14, 0x00, 0x3C, 0x32, 0x09, 0x00,
			0x42, 0x01, 0x09, 0x1E, 0x02,
			0x42, 0x09, 0x10, 0x1E, 0x02,
			0x25, 0x03, 0x04,
			0x04, 0x26, 0x12,
			0xFF,
		},
	},
	{
		// A hollow brick chamber in a boulder-heavy field, with a
		// solid brick block and a seam of diamonds underneath.
		name: "Crevasse",
		data: []byte{
			0x02, 0x10, 0x0C, 0x14, 0x1E, 0x1F, 0x20, 0x21,
			0x22, 0x0A, 0x0A, 0x0B, 0x0B, 0x0C, 0x96, 0x6E,
			0x46, 0x28, 0x1E, 0x08, 0x0B, 0x09, 0xD4, 0x20,
			0x00, 0x10, 0x14, 0x02, 0x28, 0x3C, 0x0A, 0x02,
			0x82, 0x05, 0x06, 0x0A, 0x08, 0x00,
			0xC2, 0x14, 0x08, 0x08, 0x05,
			0x54, 0x02, 0x10, 0x0A, 0x02,
			0x25, 0x01, 0x03,
			0x04, 0x26, 0x14,
			0xFF,
		},
	},
	{
		// Fireflies patrol two open galleries; diamonds sit behind a
		// brick face.
		name: "Firefly Den",
		data: []byte{
			0x03, 0x0E, 0x0A, 0x12, 0x33, 0x34, 0x35, 0x36,
			0x37, 0x0F, 0x0F, 0x10, 0x10, 0x12, 0x96, 0x6E,
			0x46, 0x28, 0x1E, 0x08, 0x0B, 0x09, 0xD4, 0x20,
			0x00, 0x10, 0x00, 0x00, 0x32, 0x28, 0x00, 0x00,
			0x82, 0x03, 0x05, 0x14, 0x06, 0x00,
			0x82, 0x03, 0x0F, 0x14, 0x06, 0x00,
			0x48, 0x05, 0x06, 0x06, 0x02,
			0x48, 0x05, 0x10, 0x06, 0x02,
			0x54, 0x1C, 0x0A, 0x08, 0x04,
			0x42, 0x1B, 0x09, 0x0C, 0x04,
			0x25, 0x02, 0x03,
			0x04, 0x25, 0x15,
			0xFF,
		},
	},
	{
		// Butterflies sealed in a brick pen; crushing them is the
		// only diamond supply.
		name: "Butterfly Garden",
		data: []byte{
			0x04, 0x0C, 0x08, 0x14, 0x47, 0x48, 0x49, 0x4A,
			0x4B, 0x14, 0x14, 0x16, 0x16, 0x19, 0x96, 0x6E,
			0x46, 0x28, 0x1E, 0x08, 0x0B, 0x09, 0xD4, 0x20,
			0x00, 0x10, 0x00, 0x00, 0x28, 0x3C, 0x00, 0x00,
			0x82, 0x08, 0x07, 0x18, 0x0A, 0x00,
			0x70, 0x0C, 0x0A, 0x08, 0x02,
			0x50, 0x0C, 0x08, 0x08, 0x02,
			0x25, 0x02, 0x04,
			0x04, 0x25, 0x13,
			0xFF,
		},
	},
	{
		// Magic walls split the cave into shafts; an amoeba grows in
		// the corner pocket.
		name: "Magic Maze",
		data: []byte{
			0x05, 0x12, 0x0E, 0x10, 0x5B, 0x5C, 0x5D, 0x5E,
			0x5F, 0x19, 0x19, 0x1E, 0x1E, 0x20, 0x96, 0x6E,
			0x46, 0x28, 0x1E, 0x08, 0x0B, 0x09, 0xD4, 0x20,
			0x00, 0x10, 0x14, 0x00, 0x30, 0x3C, 0x08, 0x00,
			0x43, 0x08, 0x04, 0x12, 0x04,
			0x43, 0x10, 0x06, 0x10, 0x04,
			0x43, 0x18, 0x04, 0x12, 0x04,
			0xFA, 0x22, 0x10, 0x04, 0x03,
			0x25, 0x01, 0x03,
			0x04, 0x26, 0x15,
			0xFF,
		},
	},
}

// CaveCount returns the number of built-in cave descriptions.
func CaveCount() int {
	return len(builtinCaves)
}

// CaveName returns the display name for a 1-based cave identifier, or ""
// when the identifier is out of range.
func CaveName(id int) string {
	if id < 1 || id > len(builtinCaves) {
		return ""
	}
	return builtinCaves[id-1].name
}
