package agi

import "math"

// execObjectMotion implements the object-motion command family: update
// gating, horizon/surface constraints, collision observation, step timing,
// and the move-to-point primitive, per §4.8.
func (vm *vmState) execObjectMotion(cmd byte, args []byte) error {
	switch cmd {
	case opStopUpdate:
		o := vm.objects.get(args[0])
		o.Flags.clear(FlagUpdate)
	case opStartUpdate:
		o := vm.objects.get(args[0])
		o.Flags.set(FlagUpdate)
	case opForceUpdate:
		// Clears the step clock so the object's next §4.8 pass moves it
		// immediately instead of waiting out its remaining step delay.
		o := vm.objects.get(args[0])
		o.Movement.stepClock = 0

	case opIgnoreHorizon:
		vm.objects.get(args[0]).Flags.clear(FlagObserveHorizon)
	case opObserveHorizon:
		// The reference implementation masks this flag instead of setting
		// it, which leaves observe.horizon unable to re-enable the check
		// once ignore.horizon has cleared it; this sets the flag as its
		// name implies.
		vm.objects.get(args[0]).Flags.set(FlagObserveHorizon)
	case opSetHorizon:
		vm.horizon = int(args[0])

	case opObjectOnWater:
		vm.objects.get(args[0]).Movement.AllowedSurface = SurfaceWater
	case opObjectOnLand:
		vm.objects.get(args[0]).Movement.AllowedSurface = SurfaceLand
	case opObjectOnAnything:
		vm.objects.get(args[0]).Movement.AllowedSurface = SurfaceAny

	case opIgnoreObjs:
		vm.objects.get(args[0]).Flags.clear(FlagObserveObjects)
	case opObserveObjs:
		vm.objects.get(args[0]).Flags.set(FlagObserveObjects)

	case opReposition:
		o := vm.objects.get(args[0])
		o.Movement.X += int(int8(vm.vars[args[1]]))
		o.Movement.Y += int(int8(vm.vars[args[2]]))

	case opGetPriority:
		vm.vars[args[1]] = vm.objects.get(args[0]).Priority()

	case opCycleTime:
		vm.objects.get(args[0]).Animation.CycleTime = int(vm.vars[args[1]])

	case opStopMotion:
		o := vm.objects.get(args[0])
		o.Flags.clear(FlagUpdate)
		if args[0] == 0 {
			vm.programControl = true
		}
	case opStartMotion:
		o := vm.objects.get(args[0])
		o.Flags.set(FlagUpdate)
		if args[0] == 0 {
			vm.programControl = false
		}

	case opStepSize:
		vm.objects.get(args[0]).Movement.StepSize = int(args[1])
	case opStepTime:
		vm.objects.get(args[0]).Movement.StepTime = int(args[1])

	case opMoveObj:
		o := vm.objects.get(args[0])
		startMoveToPoint(o, int(args[1]), int(args[2]), int(args[3]), args[4])
	case opMoveObjV:
		o := vm.objects.get(args[0])
		startMoveToPoint(o, int(vm.vars[args[1]]), int(vm.vars[args[2]]), int(vm.vars[args[3]]), args[4])
	}
	return nil
}

// objectDistance returns the Euclidean distance between two objects'
// baselines, saturated to a byte; 255 is the "too far to matter" sentinel
// the condition opcodes treat as effectively infinite.
func objectDistance(o1, o2 *Object) byte {
	dx := float64(o1.Movement.X - o2.Movement.X)
	dy := float64(o1.Movement.Y - o2.Movement.Y)
	d := math.Hypot(dx, dy)
	if d > 254 {
		return 255
	}
	return byte(d)
}

// startMoveToPoint arms an object's MotionMoveToPoint state; updatePosition
// (§4.8 step 4) drives it to completion and sets completionFlag.
func startMoveToPoint(o *Object, x, y, speed int, completionFlag byte) {
	o.Movement.Motion = MotionMoveToPoint
	o.Movement.MoveObj = MoveObjectState{DstX: x, DstY: y, Speed: speed, Flag: completionFlag}
}
