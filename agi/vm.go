package agi

import "fmt"

const (
	opIfStart    = 0xFF
	opElseJump   = 0xFE
)

// frame is one stack-of-frames entry: a running script and its ip, a byte
// offset into that script's code slice.
type frame struct {
	script *Script
	ip     int
}

func (f *frame) readByte() (byte, error) {
	if f.ip >= len(f.script.Code) {
		return 0, fmt.Errorf("vm: read past end of script at ip %d: %w", f.ip, ErrTruncatedScript)
	}
	b := f.script.Code[f.ip]
	f.ip++
	return b, nil
}

func (f *frame) readByte2() (byte, byte, error) {
	a, err := f.readByte()
	if err != nil {
		return 0, 0, err
	}
	b, err := f.readByte()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (f *frame) readByte5() (byte, byte, byte, byte, byte, error) {
	var v [5]byte
	for i := range v {
		b, err := f.readByte()
		if err != nil {
			return 0, 0, 0, 0, 0, err
		}
		v[i] = b
	}
	return v[0], v[1], v[2], v[3], v[4], nil
}

func (f *frame) readU16() (uint16, error) {
	lo, hi, err := f.readByte2()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (f *frame) skip(n int) error {
	if n < 0 || f.ip+n > len(f.script.Code) {
		return fmt.Errorf("vm: skip %d at ip %d: %w", n, f.ip, ErrTruncatedScript)
	}
	f.ip += n
	return nil
}

// vmState is the logic VM's execution state: the script stack, the 256
// variables and flags, and the object table and subsystems the command
// handlers mutate.
type vmState struct {
	stack []frame

	vars        [256]byte
	flags       [256]bool
	roomFlags   [256]bool
	pendingKeys []byte

	objects *objectTable
	fb      *Framebuffer
	picBuf  *Framebuffer

	scripts *scriptCache
	views   *viewCache
	pics    *picCache

	horizon        int
	programControl bool

	// showPriorityScreen mirrors show.pri.screen's toggle. Nothing reads
	// it: Interpreter has no accessor for it, and cmd/agi switches to the
	// priority view only on its own F9 toggle.
	showPriorityScreen bool

	rng randSource

	trace func(f *frame, opcode byte, argc int)

	// userActionRequest suspension is not implemented by any retained
	// opcode in this core (the string-input family is out of scope), so
	// cycle() never actually suspends; the seam exists so the interpreter
	// driver's resume_cycle contract still matches §5.
	suspended bool
}

func (vm *vmState) top() *frame {
	if len(vm.stack) == 0 {
		return nil
	}
	return &vm.stack[len(vm.stack)-1]
}

func (vm *vmState) push(s *Script) {
	vm.stack = append(vm.stack, frame{script: s, ip: 0})
}

func (vm *vmState) pop() {
	vm.stack = vm.stack[:len(vm.stack)-1]
}

// cycle runs the fetch-decode loop until the stack empties or a suspension
// occurs. It implements §4.7's fetch-decode cycle exactly: 0xFF begins an
// if, 0xFE is the unconditional else/end jump, anything else dispatches by
// family after consuming the opcode's fixed arity.
func (vm *vmState) cycle() error {
	for len(vm.stack) > 0 {
		f := vm.top()

		if f.ip >= len(f.script.Code) {
			vm.pop()
			continue
		}

		cmd, err := f.readByte()
		if err != nil {
			return err
		}

		switch cmd {
		case opIfStart:
			cond, err := vm.logicalAnd(f)
			if err != nil {
				return err
			}
			if cond {
				if err := f.skip(2); err != nil {
					return err
				}
			} else {
				delta, err := f.readU16()
				if err != nil {
					return err
				}
				if err := f.skip(int(int16(delta))); err != nil {
					return err
				}
			}
		case opElseJump:
			delta, err := f.readU16()
			if err != nil {
				return err
			}
			if err := f.skip(int(int16(delta))); err != nil {
				return err
			}
		default:
			argc := 0
			if int(cmd) < len(opcodeArity) {
				argc = int(opcodeArity[cmd])
			}
			args := make([]byte, argc)
			for i := range args {
				b, err := f.readByte()
				if err != nil {
					return err
				}
				args[i] = b
			}
			if vm.trace != nil {
				vm.trace(f, cmd, argc)
			}
			if err := vm.dispatch(cmd, args); err != nil {
				return err
			}
		}

		if vm.suspended {
			return nil
		}
	}
	return nil
}

// dispatch routes an opcode to its command family's handler. Families not
// wired to a concrete handler (Sound, Menu, String, Initialization,
// Inventory) fall through to a no-op: the opcode has already consumed
// its fixed-arity argument bytes above, so the fetch stays synchronised.
func (vm *vmState) dispatch(cmd byte, args []byte) error {
	// A handful of named opcodes sit at family-table positions that the
	// reference CmdTypes table leaves ambiguous or padded (opcodeFamily
	// files random and program.control under ObjectMotion, player.control
	// and show.pri.screen under Other); route those explicitly rather than
	// trust the derived family for them.
	switch cmd {
	case opRandom:
		return vm.execArithmetic(cmd, args)
	case opProgramControl, opPlayerControl:
		return vm.execProgramControl(cmd, args)
	case opShowPriScreen:
		return vm.execPictureManagement(cmd, args)
	}

	family := FamilyOther
	if int(cmd) < len(opcodeFamily) {
		family = opcodeFamily[cmd]
	}

	switch family {
	case FamilyArithmetic:
		return vm.execArithmetic(cmd, args)
	case FamilyProgramControl:
		return vm.execProgramControl(cmd, args)
	case FamilyResourceManagement:
		return vm.execResourceManagement(cmd, args)
	case FamilyObjectDescription:
		return vm.execObjectDescription(cmd, args)
	case FamilyObjectMotion:
		return vm.execObjectMotion(cmd, args)
	case FamilyPictureManagement:
		return vm.execPictureManagement(cmd, args)
	case FamilyTextManagement:
		return vm.execTextManagement(cmd, args)
	default:
		// Inventory, Sound, String, Initialization, Menu, Other: spec.md
		// treats these as recognised-but-inert; arity was already consumed.
		return nil
	}
}
