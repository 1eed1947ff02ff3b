package world

// Category is the terrain class assigned by the final classification pass.
type Category uint8

const (
	Void Category = iota
	Meadow
	Plains
	DryPlains
	Hills
	Moor
	Plateau
	SteepSlope
	RockySlope
	Cliff
	MountainLower
	MountainMid
	MountainUpper
	SnowPeak
	Marsh
	RiverWater
	LakeWater
	PondWater
	BorderWall
	categoryCount
)

var categoryNames = [categoryCount]string{
	Void:          "void",
	Meadow:        "meadow",
	Plains:        "plains",
	DryPlains:     "dry_plains",
	Hills:         "hills",
	Moor:          "moor",
	Plateau:       "plateau",
	SteepSlope:    "steep_slope",
	RockySlope:    "rocky_slope",
	Cliff:         "cliff",
	MountainLower: "mountain_lower",
	MountainMid:   "mountain_mid",
	MountainUpper: "mountain_upper",
	SnowPeak:      "snow_peak",
	Marsh:         "marsh",
	RiverWater:    "river",
	LakeWater:     "lake",
	PondWater:     "pond",
	BorderWall:    "border_wall",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return "unknown"
}

// Passable reports whether walking entities may enter the category.
func (c Category) Passable() bool {
	switch c {
	case SnowPeak, Cliff, RiverWater, LakeWater, PondWater, BorderWall, Void:
		return false
	}
	return true
}

// Water reports whether the category is standing or running water.
func (c Category) Water() bool {
	return c == RiverWater || c == LakeWater || c == PondWater
}

// Mountain reports whether the category belongs to a mountain band.
func (c Category) Mountain() bool {
	switch c {
	case MountainLower, MountainMid, MountainUpper, SnowPeak:
		return true
	}
	return false
}

// Aspect is the compass direction a slope faces.
type Aspect uint8

const (
	AspectFlat Aspect = iota
	AspectN
	AspectNE
	AspectE
	AspectSE
	AspectS
	AspectSW
	AspectW
	AspectNW
	AspectSteepPeak
)

var aspectNames = [...]string{"flat", "n", "ne", "e", "se", "s", "sw", "w", "nw", "steep_peak"}

func (a Aspect) String() string {
	if int(a) < len(aspectNames) {
		return aspectNames[a]
	}
	return "unknown"
}

// Tile is a read-only view of one cell.
type Tile struct {
	X, Y            int
	Category        Category
	Height          float32
	Slope           float32
	Aspect          Aspect
	River           bool
	Lake            bool
	WaveEligible    bool
	MarshWater      bool
	DistanceToLand  int16
	DistanceToWater int16
	Passable        bool
}
