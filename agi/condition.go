package agi

import "fmt"

const (
	condEqualN     = 0x01
	condEqualV     = 0x02
	condLessN      = 0x03
	condLessV      = 0x04
	condGreaterN   = 0x05
	condGreaterV   = 0x06
	condIsSet      = 0x07
	condIsSetV     = 0x08
	condHas        = 0x09
	condObjInBox   = 0x0A
	condController = 0x0C
	condHaveKey    = 0x0D
	condSaid       = 0x0E

	orOpen  = 0xFC
	negate  = 0xFD
	andTerm = 0xFF
)

// logicalAnd evaluates an AND-form: a sequence of terms terminated by
// 0xFF. Short-circuits on the first false but always consumes bytes
// through the terminator, per §4.7's condition grammar.
func (vm *vmState) logicalAnd(f *frame) (bool, error) {
	ok := true
	negation := false

	b, err := f.readByte()
	if err != nil {
		return false, err
	}
	for b != andTerm && ok {
		switch b {
		case orOpen:
			orResult, err := vm.logicalOr(f)
			if err != nil {
				return false, err
			}
			ok = orResult != negation
			negation = false
		case negate:
			negation = !negation
		default:
			r, err := vm.processCondition(b, f)
			if err != nil {
				return false, err
			}
			ok = r != negation
			negation = false
		}
		b, err = f.readByte()
		if err != nil {
			return false, err
		}
	}

	for b != andTerm {
		b, err = f.readByte()
		if err != nil {
			return false, err
		}
	}
	return ok, nil
}

// logicalOr evaluates an OR-form, terminated by 0xFC, with the same
// negation and short-circuit-but-consume-remainder rules as the AND-form.
func (vm *vmState) logicalOr(f *frame) (bool, error) {
	ok := false
	negation := false

	b, err := f.readByte()
	if err != nil {
		return false, err
	}
	for b != orOpen {
		if b == negate {
			negation = !negation
		} else {
			r, err := vm.processCondition(b, f)
			if err != nil {
				return false, err
			}
			if ok = r != negation; ok {
				break
			}
			negation = false
		}
		b, err = f.readByte()
		if err != nil {
			return false, err
		}
	}

	for b != orOpen {
		b, err = f.readByte()
		if err != nil {
			return false, err
		}
	}
	return ok, nil
}

// processCondition evaluates one primitive condition per §4.7's table.
func (vm *vmState) processCondition(code byte, f *frame) (bool, error) {
	switch code {
	case condEqualN:
		v, n, err := f.readByte2()
		if err != nil {
			return false, err
		}
		return vm.vars[v] == n, nil
	case condEqualV:
		v1, v2, err := f.readByte2()
		if err != nil {
			return false, err
		}
		return vm.vars[v1] == vm.vars[v2], nil
	case condLessN:
		v, n, err := f.readByte2()
		if err != nil {
			return false, err
		}
		return vm.vars[v] < n, nil
	case condLessV:
		v1, v2, err := f.readByte2()
		if err != nil {
			return false, err
		}
		return vm.vars[v1] < vm.vars[v2], nil
	case condGreaterN:
		v, n, err := f.readByte2()
		if err != nil {
			return false, err
		}
		return vm.vars[v] > n, nil
	case condGreaterV:
		v1, v2, err := f.readByte2()
		if err != nil {
			return false, err
		}
		return vm.vars[v1] > vm.vars[v2], nil
	case condIsSet:
		flag, err := f.readByte()
		if err != nil {
			return false, err
		}
		return vm.flags[flag], nil
	case condIsSetV:
		v, err := f.readByte()
		if err != nil {
			return false, err
		}
		return vm.flags[vm.vars[v]], nil
	case condHas:
		if _, err := f.readByte(); err != nil {
			return false, err
		}
		return false, nil // inventory predicate, out of scope
	case condObjInBox:
		obj, x1, y1, x2, y2, err := f.readByte5()
		if err != nil {
			return false, err
		}
		return vm.objects.objectInBox(obj, x1, y1, x2, y2), nil
	case condController:
		if _, err := f.readByte(); err != nil {
			return false, err
		}
		return false, nil // out of scope
	case condHaveKey:
		return len(vm.pendingKeys) > 0, nil
	case condSaid:
		n, err := f.readByte()
		if err != nil {
			return false, err
		}
		if err := f.skip(int(n) * 2); err != nil {
			return false, err
		}
		return false, nil // parser predicate, out of scope
	default:
		return false, fmt.Errorf("condition %#02x: %w", code, ErrUnknownOpcode)
	}
}
