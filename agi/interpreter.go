package agi

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
)

// UserActionRequest is returned by StartCycle/ResumeCycle when a
// string-input opcode suspends the cycle. No opcode retained by this core
// triggers that suspension, so it is always nil today; the type exists so
// the Interpreter's public contract matches the one suspension point §5
// describes, ready for a future string-input family.
type UserActionRequest struct {
	Prompt string
}

// Interpreter is the top-level facade: it owns every resource cache, the
// object table, the VM state, and the two framebuffers a driver needs
// (the published background and the per-frame composite with sprites).
type Interpreter struct {
	volumes *volumeCache
	scripts *scriptCache
	views   *viewCache
	pics    *picCache
	objects *objectTable
	vm      *vmState

	render Framebuffer // background + objects, what Framebuffer() exposes

	keyQueue []byte
}

// directoryFiles names the four LOGDIR/PICDIR/VIEWDIR/SNDDIR files a game
// directory carries, in DirEntry-slice loading order.
var directoryFiles = [...]string{"LOGDIR", "PICDIR", "VIEWDIR", "SNDDIR"}

// NewInterpreter opens the resource set at path, sets the initial variables
// §6 specifies, and marks first-Logic-0 execution. trace, if non-nil, is
// called once per executed opcode with the current room, the opcode and its
// argument bytes (see cycle's trace hook); pass nil to disable tracing.
func NewInterpreter(path string, trace func(room int, opcode byte, args []byte)) (*Interpreter, error) {
	dirs := make([][]DirEntry, len(directoryFiles))
	for i, name := range directoryFiles {
		raw, err := ioutil.ReadFile(filepath.Join(path, name))
		if err != nil {
			return nil, fmt.Errorf("interpreter: open %s: %w", name, err)
		}
		d, err := parseDirectory(raw)
		if err != nil {
			return nil, fmt.Errorf("interpreter: parse %s: %w", name, err)
		}
		dirs[i] = d
	}
	logDir, picDir, viewDir := dirs[0], dirs[1], dirs[2]

	volumes := newVolumeCache(path)
	rng := newMathRandSource()

	it := &Interpreter{
		volumes: volumes,
		scripts: newScriptCache(logDir, volumes),
		views:   newViewCache(viewDir, volumes),
		pics:    newPicCache(picDir, volumes),
		objects: newObjectTable(rng),
	}

	it.vm = &vmState{
		objects: it.objects,
		fb:      &Framebuffer{},
		picBuf:  &Framebuffer{},
		scripts: it.scripts,
		views:   it.views,
		pics:    it.pics,
		rng:     rng,
	}
	it.objects.onCompletion = func(flag byte) { it.vm.flags[flag] = true }
	if trace != nil {
		it.vm.trace = func(f *frame, opcode byte, argc int) {
			trace(int(it.vm.vars[varCurrentRoom]), opcode, f.script.Code[f.ip-argc:f.ip])
		}
	}

	it.vm.vars[varCycleDelay] = 1
	it.vm.vars[varFreeMemPages] = 255
	it.vm.vars[varInputBufferSize] = 41
	it.vm.vars[varComputerType] = 0
	it.vm.vars[varSoundType] = 0
	it.vm.vars[varMonitorType] = 3
	it.vm.programControl = true
	it.vm.horizon = 36
	it.vm.flags[flagFirstLogic0Execution] = true

	return it, nil
}

// StartCycle implements §6's start_cycle: clear the per-cycle input flags,
// take the oldest key off the key queue, steer ego from it if it is a
// direction key,
// clear the frame stack, push logic 0, and run to suspension or an empty
// stack, finishing the cycle if it didn't suspend.
func (it *Interpreter) StartCycle() (*UserActionRequest, error) {
	it.vm.flags[flagPlayerCommandEntered] = false
	it.vm.flags[flagUserInputAccepted] = false

	it.pollInput()
	it.steerEgo()

	it.vm.stack = it.vm.stack[:0]
	it.vm.suspended = false
	if err := it.vm.call(0); err != nil {
		return nil, err
	}
	return it.runCycle()
}

// ResumeCycle implements §6's resume_cycle: continue a suspended cycle's
// existing frame stack.
func (it *Interpreter) ResumeCycle() (*UserActionRequest, error) {
	it.vm.suspended = false
	return it.runCycle()
}

func (it *Interpreter) runCycle() (*UserActionRequest, error) {
	if err := it.vm.cycle(); err != nil {
		return nil, err
	}
	if it.vm.suspended {
		return &UserActionRequest{}, nil
	}
	it.finishCycle()
	return nil, nil
}

// finishCycle implements the "object/animation update -> scene composite"
// half of a cycle: step every {Animated,Update,Drawn} object per §4.8, then
// render the composite (background plus sprites) into it.render without
// touching the published background it.vm.fb, so sprites never leave
// trails on the backing picture.
func (it *Interpreter) finishCycle() {
	ego := it.objects.get(0)
	for i := 0; i < numObjects; i++ {
		it.objects.stepObject(it.objects.get(byte(i)), ego.Movement.X, ego.Movement.Y, it.vm.horizon)
	}

	it.render = *it.vm.fb
	it.objects.paintObjects(&it.render)
}

// OnKeyPress enqueues scancode and sets V[19]; each StartCycle takes one
// key off the queue.
func (it *Interpreter) OnKeyPress(scancode byte) {
	it.keyQueue = append(it.keyQueue, scancode)
	it.vm.vars[varPressedKey] = scancode
}

func (it *Interpreter) pollInput() {
	if len(it.keyQueue) == 0 {
		return
	}
	scancode := it.keyQueue[0]
	it.keyQueue = it.keyQueue[1:]
	it.vm.vars[varPressedKey] = scancode
	it.vm.flags[flagUserInputAccepted] = true
}

// directionScancodes maps the numpad scancodes classic AGI drivers send for
// movement (Home/Up/PgUp/Left/Right/End/Down/PgDn) to the eight compass
// directions.
var directionScancodes = map[byte]Direction{
	71: NorthWest, 72: North, 73: NorthEast,
	75: West, 76: Stationary, 77: East,
	79: SouthWest, 80: South, 81: SouthEast,
}

// steerEgo implements start_cycle's "update direction of controllable
// objects": ego (object 0) moves under MotionNormal, so its Direction is
// driven directly by the last pressed movement key rather than by any of
// the §4.8 automatic motion models.
func (it *Interpreter) steerEgo() {
	ego := it.objects.get(0)
	if ego.Movement.Motion != MotionNormal {
		return
	}
	if d, ok := directionScancodes[it.vm.vars[varPressedKey]]; ok && it.vm.flags[flagUserInputAccepted] {
		ego.Movement.Direction = d
	}
}

// CycleDelay returns V[10]*50 milliseconds, re-read on every call since
// scripts may change it at runtime.
func (it *Interpreter) CycleDelay() int {
	return int(it.vm.vars[varCycleDelay]) * 50
}

// Framebuffer returns the current composite (background plus sprites).
func (it *Interpreter) Framebuffer() *Framebuffer {
	return &it.render
}

// Room returns the current room number, V[0].
func (it *Interpreter) Room() byte {
	return it.vm.vars[varCurrentRoom]
}

// Variable returns V[i], for a driver's debug HUD.
func (it *Interpreter) Variable(i byte) byte {
	return it.vm.vars[i]
}

// Flag returns flag i, for a driver's debug HUD.
func (it *Interpreter) Flag(i byte) bool {
	return it.vm.flags[i]
}

// EgoPosition returns object 0's current coordinates.
func (it *Interpreter) EgoPosition() (x, y int) {
	ego := it.objects.get(0)
	return ego.Movement.X, ego.Movement.Y
}
