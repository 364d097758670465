package agi

import "testing"

func newTestVM() *vmState {
	return &vmState{
		objects: newObjectTable(newMathRandSource()),
		fb:      &Framebuffer{},
		picBuf:  &Framebuffer{},
	}
}

func (vm *vmState) run(code []byte) error {
	vm.push(&Script{Code: code})
	return vm.cycle()
}

// TestConditionalBranchTaken builds if(equaln(v0,5)) { v1 = 1 } else { v1 =
// 2 }. equaln(0,5) is 0x01 0x00 0x05, terminated by 0xFF (andTerm), the
// if-header's own 2-byte skip-distance follows the AND form, then the
// then-branch, then an unconditional else-jump (0xFE) over the else-branch.
func TestConditionalBranchTaken(t *testing.T) {
	vm := newTestVM()
	vm.vars[0] = 5

	thenBranch := []byte{opAssignN, 1, 1} // v1 = 1
	elseBranch := []byte{opAssignN, 1, 2} // v1 = 2

	code := []byte{opIfStart, condEqualN, 0, 5, andTerm}
	skipLen := len(thenBranch) + 3 // then-branch + else-jump header
	code = append(code, byte(skipLen), byte(skipLen>>8))
	code = append(code, thenBranch...)
	code = append(code, opElseJump, byte(len(elseBranch)), byte(len(elseBranch)>>8))
	code = append(code, elseBranch...)

	if err := vm.run(code); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if vm.vars[1] != 1 {
		t.Errorf("v1 = %d, want 1 (then-branch should run)", vm.vars[1])
	}
}

func TestConditionalBranchNotTaken(t *testing.T) {
	vm := newTestVM()
	vm.vars[0] = 9 // equaln(0,5) is false

	thenBranch := []byte{opAssignN, 1, 1}
	elseBranch := []byte{opAssignN, 1, 2}

	code := []byte{opIfStart, condEqualN, 0, 5, andTerm}
	skipLen := len(thenBranch) + 3
	code = append(code, byte(skipLen), byte(skipLen>>8))
	code = append(code, thenBranch...)
	code = append(code, opElseJump, byte(len(elseBranch)), byte(len(elseBranch)>>8))
	code = append(code, elseBranch...)

	if err := vm.run(code); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if vm.vars[1] != 2 {
		t.Errorf("v1 = %d, want 2 (else-branch should run)", vm.vars[1])
	}
}

func TestLogicalAndNegation(t *testing.T) {
	vm := newTestVM()
	vm.flags[3] = false

	// if (! isset(3)) { v1 = 7 }
	code := []byte{opIfStart, negate, condIsSet, 3, andTerm, 3, 0}
	code = append(code, opAssignN, 1, 7)

	if err := vm.run(code); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if vm.vars[1] != 7 {
		t.Errorf("v1 = %d, want 7", vm.vars[1])
	}
}

func TestLogicalOr(t *testing.T) {
	vm := newTestVM()
	vm.vars[0] = 1

	// if (equaln(0,5) or equaln(0,1)) { v1 = 9 }
	code := []byte{opIfStart, orOpen, condEqualN, 0, 5, condEqualN, 0, 1, orOpen, andTerm, 3, 0}
	code = append(code, opAssignN, 1, 9)

	if err := vm.run(code); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if vm.vars[1] != 9 {
		t.Errorf("v1 = %d, want 9", vm.vars[1])
	}
}
