package agi

// saturatingAdd/saturatingSub implement the VM's byte-saturating
// arithmetic: addn(V[k]=250,10)=255, subn(V[k]=5,10)=0.
func saturatingAdd(a, b byte) byte {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func saturatingSub(a, b byte) byte {
	diff := int(a) - int(b)
	if diff < 0 {
		return 0
	}
	return byte(diff)
}

func (vm *vmState) execArithmetic(cmd byte, args []byte) error {
	switch cmd {
	case opIncrement:
		vm.vars[args[0]] = saturatingAdd(vm.vars[args[0]], 1)
	case opDecrement:
		vm.vars[args[0]] = saturatingSub(vm.vars[args[0]], 1)
	case opAssignN:
		vm.vars[args[0]] = args[1]
	case opAssignV:
		vm.vars[args[0]] = vm.vars[args[1]]
	case opAddN:
		vm.vars[args[0]] = saturatingAdd(vm.vars[args[0]], args[1])
	case opAddV:
		vm.vars[args[0]] = saturatingAdd(vm.vars[args[0]], vm.vars[args[1]])
	case opSubN:
		vm.vars[args[0]] = saturatingSub(vm.vars[args[0]], args[1])
	case opSubV:
		vm.vars[args[0]] = saturatingSub(vm.vars[args[0]], vm.vars[args[1]])
	case opLindirectV:
		vm.vars[vm.vars[args[0]]] = vm.vars[args[1]]
	case opRindirect:
		vm.vars[args[0]] = vm.vars[vm.vars[args[1]]]
	case opLindirectN:
		vm.vars[vm.vars[args[0]]] = args[1]
	case opSet:
		vm.flags[args[0]] = true
	case opReset:
		vm.flags[args[0]] = false
	case opToggle:
		vm.flags[args[0]] = !vm.flags[args[0]]
	case opSetV:
		vm.flags[vm.vars[args[0]]] = true
	case opResetV:
		vm.flags[vm.vars[args[0]]] = false
	case opToggleV:
		f := vm.vars[args[0]]
		vm.flags[f] = !vm.flags[f]
	case opRandom:
		lo, hi, dst := args[0], args[1], args[2]
		vm.vars[dst] = randomByte(vm.rng, lo, hi)
	}
	return nil
}

// randomByte returns a uniform value in [lo,hi], clamping lo<=hi.
func randomByte(rng randSource, lo, hi byte) byte {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := int(hi) - int(lo) + 1
	return lo + byte(rng.intn(span))
}
