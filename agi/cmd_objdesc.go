package agi

// execObjectDescription implements the object-description command family:
// animation/view/loop/cel/priority bookkeeping and cycling control, per
// §4.8's per-object state machine.
func (vm *vmState) execObjectDescription(cmd byte, args []byte) error {
	switch cmd {
	case opAnimateObj:
		o := vm.objects.get(args[0])
		o.Flags.set(FlagAnimated)
		o.Flags.set(FlagUpdate)
		o.Flags.set(FlagCycling)
		o.Movement.Motion = MotionNormal
		o.Movement.Direction = Stationary

	case opUnanimateAll:
		vm.objects.unanimateAll()

	case opDraw:
		vm.objects.get(args[0]).Flags.set(FlagDrawn)

	case opErase:
		vm.objects.get(args[0]).Flags.clear(FlagDrawn)

	case opPosition:
		o := vm.objects.get(args[0])
		o.Movement.X, o.Movement.Y = int(args[1]), int(args[2])

	case opPositionV:
		o := vm.objects.get(args[0])
		o.Movement.X = int(vm.vars[args[1]])
		o.Movement.Y = int(vm.vars[args[2]])

	case opGetPosn:
		o := vm.objects.get(args[0])
		vm.vars[args[1]] = byte(o.Movement.X)
		vm.vars[args[2]] = byte(o.Movement.Y)

	case opSetView:
		return vm.setView(args[0], int(args[1]))
	case opSetViewV:
		return vm.setView(args[0], int(vm.vars[args[1]]))

	case opSetLoop:
		o := vm.objects.get(args[0])
		o.Animation.Loop = int(args[1])
		clampCel(o)
	case opSetLoopV:
		o := vm.objects.get(args[0])
		o.Animation.Loop = int(vm.vars[args[1]])
		clampCel(o)

	case opFixLoop:
		vm.objects.get(args[0]).Flags.set(FlagFixedLoop)
	case opReleaseLoop:
		vm.objects.get(args[0]).Flags.clear(FlagFixedLoop)

	case opSetCel:
		o := vm.objects.get(args[0])
		o.Animation.Cel = int(args[1])
		clampCel(o)
	case opSetCelV:
		o := vm.objects.get(args[0])
		o.Animation.Cel = int(vm.vars[args[1]])
		clampCel(o)

	case opLastCel:
		o := vm.objects.get(args[0])
		vm.vars[args[1]] = byte(lastCel(o))
	case opCurrentCel:
		vm.vars[args[1]] = byte(vm.objects.get(args[0]).Animation.Cel)
	case opCurrentLoop:
		vm.vars[args[1]] = byte(vm.objects.get(args[0]).Animation.Loop)
	case opCurrentView:
		vm.vars[args[1]] = byte(vm.objects.get(args[0]).Animation.ViewIndex)
	case opNumberOfLoops:
		o := vm.objects.get(args[0])
		n := 0
		if o.Animation.View != nil {
			n = len(o.Animation.View.Loops)
		}
		vm.vars[args[1]] = byte(n)

	case opSetPriority:
		o := vm.objects.get(args[0])
		o.Flags.set(FlagFixedPriority)
		o.Animation.Priority = args[1]
	case opSetPriorityV:
		o := vm.objects.get(args[0])
		o.Flags.set(FlagFixedPriority)
		o.Animation.Priority = vm.vars[args[1]]
	case opReleasePriority:
		vm.objects.get(args[0]).Flags.clear(FlagFixedPriority)

	case opStopCycling:
		vm.objects.get(args[0]).Flags.clear(FlagCycling)
	case opStartCycling:
		o := vm.objects.get(args[0])
		o.Flags.set(FlagCycling)
	case opNormalCycle:
		o := vm.objects.get(args[0])
		o.Animation.CycleType = CycleNormal
		o.Flags.set(FlagCycling)
	case opEndOfLoop:
		o := vm.objects.get(args[0])
		o.Animation.CycleType = CycleEndOfLoop
		o.Animation.CompletionFlag = args[1]
		o.Flags.set(FlagCycling)
	case opReverseCycle:
		o := vm.objects.get(args[0])
		o.Animation.CycleType = CycleReverseCycle
		o.Flags.set(FlagCycling)
	case opReverseLoop:
		o := vm.objects.get(args[0])
		o.Animation.CycleType = CycleReverseLoop
		o.Animation.CompletionFlag = args[1]
		o.Flags.set(FlagCycling)
	case opDistance:
		o1 := vm.objects.get(args[0])
		o2 := vm.objects.get(args[1])
		vm.vars[args[2]] = objectDistance(o1, o2)
	}
	return nil
}

// setView implements set.view/set.view.v: load the view resource, attach
// it, and reset the loop/cel to the first frame (the view's previous
// loop/cel selection no longer applies to a new sprite sheet).
func (vm *vmState) setView(obj byte, viewIndex int) error {
	v, err := vm.views.get(viewIndex)
	if err != nil {
		return err
	}
	o := vm.objects.get(obj)
	o.Animation.ViewIndex = viewIndex
	o.Animation.View = v
	o.Animation.Loop = 0
	o.Animation.Cel = 0
	return nil
}

func lastCel(o *Object) int {
	if o.Animation.View == nil || o.Animation.Loop >= len(o.Animation.View.Loops) {
		return 0
	}
	cels := len(o.Animation.View.Loops[o.Animation.Loop].Cels)
	if cels == 0 {
		return 0
	}
	return cels - 1
}
