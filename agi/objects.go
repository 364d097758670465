package agi

import "math"

const numObjects = 256

// objectTable owns the fixed 256-object array and the per-cycle update
// logic: direction resolution, loop selection, animation ticking, position
// update, and sprite compositing. It is a thin Go analogue of the
// original's dedicated ObjectTable type, composed into the interpreter
// rather than the interpreter doing object bookkeeping itself.
type objectTable struct {
	objects   [numObjects]Object
	displayed map[byte]bool
	rng       randSource

	// onCompletion is wired by the interpreter to set a VM flag when an
	// end.of.loop/reverse.loop/move.obj completion fires.
	onCompletion func(flag byte)
}

func newObjectTable(rng randSource) *objectTable {
	return &objectTable{displayed: make(map[byte]bool), rng: rng}
}

func (t *objectTable) get(i byte) *Object { return &t.objects[i] }

func (t *objectTable) unanimateAll() {
	for i := range t.objects {
		t.objects[i].Flags = 0
	}
	t.displayed = make(map[byte]bool)
}

// loopMap4 and loopMap2 are the direction->loop selection tables for views
// with >=4 loops and with 2-3 loops respectively, keyed by Direction
// (Stationary never changes the loop so it has no entry).
var loopMap4 = map[Direction]int{
	North: 3, NorthEast: 0, East: 0, SouthEast: 0,
	South: 2, SouthWest: 1, West: 1, NorthWest: 1,
}

var loopMap2 = map[Direction]int{
	North: 0, NorthEast: 0, East: 0, SouthEast: 0,
	South: 0, SouthWest: 1, West: 1, NorthWest: 1,
}

// directionTowards returns the eight-way direction from (x0,y0) toward
// (x1,y1), Stationary if they coincide.
func directionTowards(x0, y0, x1, y1 int) Direction {
	dx, dy := x1-x0, y1-y0
	if dx == 0 && dy == 0 {
		return Stationary
	}

	var horiz, vert int // -1, 0, 1
	switch {
	case dx > 0:
		horiz = 1
	case dx < 0:
		horiz = -1
	}
	switch {
	case dy > 0:
		vert = 1
	case dy < 0:
		vert = -1
	}

	switch {
	case horiz == 0 && vert < 0:
		return North
	case horiz > 0 && vert < 0:
		return NorthEast
	case horiz > 0 && vert == 0:
		return East
	case horiz > 0 && vert > 0:
		return SouthEast
	case horiz == 0 && vert > 0:
		return South
	case horiz < 0 && vert > 0:
		return SouthWest
	case horiz < 0 && vert == 0:
		return West
	case horiz < 0 && vert < 0:
		return NorthWest
	}
	return Stationary
}

// directionDelta maps a Direction to a unit (dx,dy) step.
var directionDelta = [...][2]int{
	Stationary: {0, 0},
	North:      {0, -1},
	NorthEast:  {1, -1},
	East:       {1, 0},
	SouthEast:  {1, 1},
	South:      {0, 1},
	SouthWest:  {-1, 1},
	West:       {-1, 0},
	NorthWest:  {-1, -1},
}

// updateDirection implements §4.8 step 1 for one object, given ego's
// position for FollowEgo.
func (t *objectTable) updateDirection(o *Object, egoX, egoY int) {
	switch o.Movement.Motion {
	case MotionNormal:
		// unchanged
	case MotionWander:
		o.wanderClock--
		if o.wanderClock <= 0 {
			o.wanderClock = 4
			o.Movement.Direction = Direction(t.rng.intn(9))
		}
	case MotionFollowEgo:
		o.Movement.Direction = directionTowards(o.Movement.X, o.Movement.Y, egoX, egoY)
	case MotionMoveToPoint:
		o.Movement.Direction = directionTowards(o.Movement.X, o.Movement.Y, o.Movement.MoveObj.DstX, o.Movement.MoveObj.DstY)
	}
}

// updateLoop implements §4.8 step 2.
func (t *objectTable) updateLoop(o *Object) {
	if o.Flags.has(FlagFixedLoop) || o.Animation.View == nil {
		return
	}
	if o.Movement.Direction == Stationary {
		return
	}

	n := len(o.Animation.View.Loops)
	var table map[Direction]int
	switch {
	case n >= 4:
		table = loopMap4
	case n >= 2:
		table = loopMap2
	default:
		return
	}

	loop, ok := table[o.Movement.Direction]
	if !ok || loop >= n {
		return
	}
	if loop != o.Animation.Loop {
		o.Animation.Loop = loop
		clampCel(o)
	}
}

func clampCel(o *Object) {
	if o.Animation.View == nil {
		return
	}
	if o.Animation.Loop >= len(o.Animation.View.Loops) {
		return
	}
	cels := len(o.Animation.View.Loops[o.Animation.Loop].Cels)
	if cels == 0 {
		o.Animation.Cel = 0
		return
	}
	if o.Animation.Cel >= cels {
		o.Animation.Cel = cels - 1
	}
}

// tickAnimation implements §4.8 step 3.
func (t *objectTable) tickAnimation(o *Object) {
	if !o.Flags.has(FlagCycling) || o.Animation.View == nil {
		return
	}
	if o.Animation.Loop >= len(o.Animation.View.Loops) {
		return
	}
	cels := len(o.Animation.View.Loops[o.Animation.Loop].Cels)
	if cels == 0 {
		return
	}

	o.Animation.cycleClock--
	if o.Animation.cycleClock > 0 {
		return
	}
	o.Animation.cycleClock = maxInt(1, o.Animation.CycleTime)

	switch o.Animation.CycleType {
	case CycleNormal:
		o.Animation.Cel = (o.Animation.Cel + 1) % cels
	case CycleEndOfLoop:
		if o.Animation.Cel+1 >= cels {
			o.Flags.clear(FlagCycling)
			t.setCompletionFlagHolder(o, o.Animation.CompletionFlag)
		} else {
			o.Animation.Cel++
		}
	case CycleReverseLoop:
		if o.Animation.Cel == 0 {
			o.Flags.clear(FlagCycling)
			t.setCompletionFlagHolder(o, o.Animation.CompletionFlag)
		} else {
			o.Animation.Cel--
		}
	case CycleReverseCycle:
		if o.Animation.Cel == 0 {
			o.Animation.Cel = cels - 1
		} else {
			o.Animation.Cel--
		}
	}
}

// setCompletionFlagHolder calls back into the interpreter's flag array,
// keeping objectTable independent of VM flag storage.
func (t *objectTable) setCompletionFlagHolder(o *Object, flag byte) {
	if t.onCompletion != nil {
		t.onCompletion(flag)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// updatePosition implements §4.8 step 4.
func (t *objectTable) updatePosition(o *Object, horizon int) {
	if o.Movement.Motion == MotionMoveToPoint {
		t.updateMoveToPoint(o)
		return
	}

	o.Movement.stepClock--
	if o.Movement.stepClock > 0 {
		return
	}
	o.Movement.stepClock = maxInt(1, o.Movement.StepTime)

	d := directionDelta[o.Movement.Direction]
	step := maxInt(1, o.Movement.StepSize)
	nx := o.Movement.X + d[0]*step
	ny := o.Movement.Y + d[1]*step

	if o.Flags.has(FlagObserveHorizon) && ny < horizon {
		ny = horizon
	}
	if nx < 0 {
		nx = 0
	}
	if nx >= PictureWidth {
		nx = PictureWidth - 1
	}
	if ny < 0 {
		ny = 0
	}
	if ny >= PictureHeight {
		ny = PictureHeight - 1
	}

	o.Movement.X, o.Movement.Y = nx, ny
}

func (t *objectTable) updateMoveToPoint(o *Object) {
	m := &o.Movement
	dx := float64(m.MoveObj.DstX - m.X)
	dy := float64(m.MoveObj.DstY - m.Y)
	d := math.Hypot(dx, dy)
	speed := float64(maxInt(1, m.MoveObj.Speed))

	if d <= speed {
		m.X, m.Y = m.MoveObj.DstX, m.MoveObj.DstY
		m.Motion = MotionNormal
		t.setCompletionFlagHolder(o, m.MoveObj.Flag)
		return
	}

	m.X += int(math.Round(dx / d * speed))
	m.Y += int(math.Round(dy / d * speed))
}

// stepObject runs the full per-cycle update for one object with
// {Animated,Update,Drawn} all set, per §4.8.
func (t *objectTable) stepObject(o *Object, egoX, egoY, horizon int) {
	if !(o.Flags.has(FlagAnimated) && o.Flags.has(FlagUpdate) && o.Flags.has(FlagDrawn)) {
		return
	}
	t.updateDirection(o, egoX, egoY)
	t.updateLoop(o)
	t.tickAnimation(o)
	t.updatePosition(o, horizon)
}

// paintObject composites one drawn object's current cel into fb, honouring
// mirroring and per-pixel priority, per §4.8's sprite rendering algorithm.
func paintObject(fb *Framebuffer, o *Object) {
	if o.Animation.View == nil {
		return
	}
	if o.Animation.Loop >= len(o.Animation.View.Loops) {
		return
	}
	loop := o.Animation.View.Loops[o.Animation.Loop]
	if o.Animation.Cel >= len(loop.Cels) {
		return
	}
	cel := loop.Cels[o.Animation.Cel]

	startY := o.Movement.Y - int(cel.Height) + 1
	startX := o.Movement.X
	priority := o.Priority()

	mirror := cel.Mirrored && int(cel.MirrorLoop) != o.Animation.Loop

	w, h := int(cel.Width), int(cel.Height)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			srcCol := col
			if mirror {
				srcCol = w - col - 1
			}
			px := cel.Pixels[row*w+srcCol]
			if px == cel.ColorKey {
				continue
			}
			fb.SetPixelIfHigherPriority(startX+col, startY+row, px, priority)
		}
	}
}

// objectInBox implements the obj.in.box condition: whether the object's
// baseline rectangle intersects (x1,y1)-(x2,y2).
func (t *objectTable) objectInBox(id, x1, y1, x2, y2 byte) bool {
	o := &t.objects[id]
	left, top := x1, y1
	right, bottom := x2, y2
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}

	halfW := o.Movement.XSize / 2
	ox1 := o.Movement.X - halfW
	ox2 := o.Movement.X + halfW
	oy := o.Movement.Y

	return ox2 >= int(left) && ox1 <= int(right) && oy >= int(top) && oy <= int(bottom)
}

// paintObjects composites every drawn object in ascending object-id order.
func (t *objectTable) paintObjects(fb *Framebuffer) {
	for i := 0; i < numObjects; i++ {
		o := &t.objects[i]
		if !o.Flags.has(FlagDrawn) {
			continue
		}
		paintObject(fb, o)
	}
}

// randSource is the seam for random() and Wander direction picks, so a
// deterministic source can stand in for mathRandSource.
type randSource interface {
	intn(n int) int
}
