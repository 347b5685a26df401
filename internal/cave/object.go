// Package cave implements the cave decoding and tick physics core of
// Rockfall. The package is UI-agnostic and deterministic: decoding a cave
// and stepping the world depend only on the cave bytes, the difficulty and
// the sequence of player inputs.
package cave

// Object identifies a grid cell or entity kind. Codes occupy [0x00, 0x3F]
// so they fit in the low six bits of an instruction opcode.
type Object uint8

const (
	ObjSpace     Object = 0x00
	ObjDirt      Object = 0x01
	ObjBrickWall Object = 0x02
	ObjMagicWall Object = 0x03
	ObjPreOutBox Object = 0x04
	ObjOutBox    Object = 0x05
	ObjSteelWall Object = 0x07

	ObjFirefly1 Object = 0x08
	ObjFirefly2 Object = 0x09
	ObjFirefly3 Object = 0x0A
	ObjFirefly4 Object = 0x0B

	ObjBoulder        Object = 0x10
	ObjBoulderFalling Object = 0x12
	ObjDiamond        Object = 0x14
	ObjDiamondFalling Object = 0x16

	// Explosion phases. The ToSpace run decays to empty space, the
	// ToDiamond run (butterfly remains) decays to a diamond.
	ObjExplodeToSpace1 Object = 0x1B
	ObjExplodeToSpace2 Object = 0x1C
	ObjExplodeToSpace3 Object = 0x1D
	ObjExplodeToSpace4 Object = 0x1E
	ObjExplodeToSpace5 Object = 0x1F

	ObjExplodeToDiamond1 Object = 0x20
	ObjExplodeToDiamond2 Object = 0x21
	ObjExplodeToDiamond3 Object = 0x22
	ObjExplodeToDiamond4 Object = 0x23
	ObjExplodeToDiamond5 Object = 0x24

	ObjInBox Object = 0x25

	ObjButterfly1 Object = 0x30
	ObjButterfly2 Object = 0x31
	ObjButterfly3 Object = 0x32
	ObjButterfly4 Object = 0x33

	ObjPlayer Object = 0x38
	ObjAmoeba Object = 0x3A
)

// MaxObject is the highest representable object code.
const MaxObject = 0x3F

// Capabilities describes the immutable behavior flags of an object code.
type Capabilities struct {
	Name       string
	Rounded    bool // something resting on top may slide off diagonally
	Explodable bool // destroyed by a crush, triggers an explosion
	Consumable bool // can be eaten by the player or destroyed in a blast
	Fallable   bool // subject to gravity
	Animated   bool // advances an animation frame each tick

	// FrameCount is the length of the animation cycle for animated
	// objects, 1 otherwise.
	FrameCount int

	// PortalCycles is the number of animation cycles the entry portal
	// runs before it becomes the player. Zero for everything else.
	PortalCycles int

	// GID is the tile-sheet index used by the rendering collaborator.
	GID int
}

// capTable is the static object classification. It is never mutated.
var capTable = map[Object]Capabilities{
	ObjSpace:     {Name: "space", Consumable: true, FrameCount: 1, GID: 0},
	ObjDirt:      {Name: "dirt", Consumable: true, FrameCount: 1, GID: 1},
	ObjBrickWall: {Name: "brick-wall", Rounded: true, Consumable: true, FrameCount: 1, GID: 2},
	ObjMagicWall: {Name: "magic-wall", Animated: true, FrameCount: 4, GID: 3},
	ObjPreOutBox: {Name: "pre-out-box", FrameCount: 1, GID: 4},
	ObjOutBox:    {Name: "out-box", Animated: true, FrameCount: 2, GID: 5},
	ObjSteelWall: {Name: "steel-wall", FrameCount: 1, GID: 7},

	ObjFirefly1: {Name: "firefly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 8},
	ObjFirefly2: {Name: "firefly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 8},
	ObjFirefly3: {Name: "firefly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 8},
	ObjFirefly4: {Name: "firefly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 8},

	ObjBoulder:        {Name: "boulder", Rounded: true, Consumable: true, Fallable: true, FrameCount: 1, GID: 16},
	ObjBoulderFalling: {Name: "boulder-falling", Consumable: true, Fallable: true, FrameCount: 1, GID: 16},
	ObjDiamond:        {Name: "diamond", Rounded: true, Consumable: true, Fallable: true, Animated: true, FrameCount: 8, GID: 20},
	ObjDiamondFalling: {Name: "diamond-falling", Consumable: true, Fallable: true, Animated: true, FrameCount: 8, GID: 20},

	ObjExplodeToSpace1: {Name: "explosion", Animated: true, FrameCount: 5, GID: 27},
	ObjExplodeToSpace2: {Name: "explosion", Animated: true, FrameCount: 5, GID: 28},
	ObjExplodeToSpace3: {Name: "explosion", Animated: true, FrameCount: 5, GID: 29},
	ObjExplodeToSpace4: {Name: "explosion", Animated: true, FrameCount: 5, GID: 28},
	ObjExplodeToSpace5: {Name: "explosion", Animated: true, FrameCount: 5, GID: 27},

	ObjExplodeToDiamond1: {Name: "explosion-diamond", Animated: true, FrameCount: 5, GID: 27},
	ObjExplodeToDiamond2: {Name: "explosion-diamond", Animated: true, FrameCount: 5, GID: 28},
	ObjExplodeToDiamond3: {Name: "explosion-diamond", Animated: true, FrameCount: 5, GID: 29},
	ObjExplodeToDiamond4: {Name: "explosion-diamond", Animated: true, FrameCount: 5, GID: 28},
	ObjExplodeToDiamond5: {Name: "explosion-diamond", Animated: true, FrameCount: 5, GID: 27},

	ObjInBox: {Name: "in-box", Animated: true, FrameCount: 4, PortalCycles: 3, GID: 37},

	ObjButterfly1: {Name: "butterfly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 41},
	ObjButterfly2: {Name: "butterfly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 41},
	ObjButterfly3: {Name: "butterfly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 41},
	ObjButterfly4: {Name: "butterfly", Explodable: true, Consumable: true, Animated: true, FrameCount: 4, GID: 41},

	ObjPlayer: {Name: "player", Explodable: true, Consumable: true, Animated: true, FrameCount: 8, GID: 49},
	ObjAmoeba: {Name: "amoeba", Consumable: true, Animated: true, FrameCount: 8, GID: 57},
}

// Caps returns the capability record for an object code. Unknown codes
// answer a zero-value record with ok=false; callers decide whether that is
// fatal (the decoder treats it as a warning during sprite expansion).
func Caps(o Object) (Capabilities, bool) {
	c, ok := capTable[o]
	return c, ok
}

// Known reports whether the object code appears in the type table.
func Known(o Object) bool {
	_, ok := capTable[o]
	return ok
}

// IsButterfly reports whether the code is one of the four butterfly phases.
func IsButterfly(o Object) bool {
	return o >= ObjButterfly1 && o <= ObjButterfly4
}

// String returns the table name of the object, or "unknown".
func (o Object) String() string {
	if c, ok := capTable[o]; ok {
		return c.Name
	}
	return "unknown"
}
