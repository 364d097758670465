package agi

// Direction is one of the eight compass directions plus Stationary.
type Direction byte

const (
	Stationary Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Motion is the movement model driving an object's position update.
type Motion byte

const (
	MotionNormal Motion = iota
	MotionWander
	MotionFollowEgo
	MotionMoveToPoint
)

// SurfaceType constrains where an object is allowed to walk.
type SurfaceType byte

const (
	SurfaceAny SurfaceType = iota
	SurfaceWater
	SurfaceLand
)

// AnimationCycle is the cel-advance policy used by the animation tick.
type AnimationCycle byte

const (
	CycleNormal AnimationCycle = iota
	CycleEndOfLoop
	CycleReverseLoop
	CycleReverseCycle
)

// Object flag bits, in the same order object.h defines them.
const (
	FlagAnimated Flags = 1 << iota
	FlagUpdate
	FlagDrawn
	FlagCycling
	FlagObserveBlocks
	FlagFixedPriority
	FlagObserveHorizon
	FlagOnWater
	FlagOnLand
	FlagFixedLoop
	FlagObserveObjects
)

// Flags is the per-object bitset of the flags above.
type Flags uint16

func (f Flags) has(bit Flags) bool  { return f&bit != 0 }
func (f *Flags) set(bit Flags)      { *f |= bit }
func (f *Flags) clear(bit Flags)    { *f &^= bit }

// MoveObjectState is the destination record for MotionMoveToPoint.
type MoveObjectState struct {
	DstX, DstY int
	Speed      int
	Flag       byte // completion flag index, set when the destination is reached
}

// Movement is an object's positional and motion state.
type Movement struct {
	X, Y           int
	XSize, YSize   int
	Direction      Direction
	Motion         Motion
	AllowedSurface SurfaceType
	StepSize       int
	StepTime       int
	stepClock      int // internal: ticks until the next step, driven by StepTime
	MoveObj        MoveObjectState
}

// Animation is an object's view/cel state.
type Animation struct {
	ViewIndex     int
	View          *View
	Loop          int
	Cel           int
	CycleTime     int
	cycleClock    int
	CompletionFlag byte
	Priority      byte
	CycleType     AnimationCycle
}

// Object is one of the 256 fixed game objects; object 0 is ego.
type Object struct {
	Movement  Movement
	Animation Animation
	Flags     Flags

	wanderClock int // internal: ticks until Wander picks a new direction
}

// priorityBands are the y-coordinate cutoffs mapping screen row to a
// priority band 4..14 (row below the first cutoff still yields 4).
var priorityBands = [...]int{48, 60, 72, 84, 96, 108, 120, 132, 144, 156, 168}

func priorityForY(y int) byte {
	for i, cutoff := range priorityBands {
		if y < cutoff {
			return byte(i + 4)
		}
	}
	return byte(len(priorityBands) + 4 - 1)
}

// Priority returns the object's derived priority: FixedPriority uses the
// animation's stored priority byte, otherwise it's the band for the
// object's current y.
func (o *Object) Priority() byte {
	if o.Flags.has(FlagFixedPriority) {
		return o.Animation.Priority
	}
	return priorityForY(o.Movement.Y)
}
