package agi

import "testing"

func TestPriorityForY(t *testing.T) {
	tests := []struct {
		y    int
		want byte
	}{
		{0, 4},
		{47, 4},
		{48, 5},
		{167, 14},
		{168, 14},
		{500, 14},
	}
	for _, tt := range tests {
		if got := priorityForY(tt.y); got != tt.want {
			t.Errorf("priorityForY(%d) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestObjectDistance(t *testing.T) {
	a := &Object{}
	a.Movement.X, a.Movement.Y = 0, 0
	b := &Object{}
	b.Movement.X, b.Movement.Y = 3, 4

	if got := objectDistance(a, b); got != 5 {
		t.Errorf("objectDistance = %d, want 5", got)
	}
}

func TestObjectDistanceSaturates(t *testing.T) {
	a := &Object{}
	a.Movement.X, a.Movement.Y = 0, 0
	b := &Object{}
	b.Movement.X, b.Movement.Y = 300, 300

	if got := objectDistance(a, b); got != 255 {
		t.Errorf("objectDistance = %d, want 255 (saturated)", got)
	}
}

func TestMoveToPointReachesDestinationAndSetsFlag(t *testing.T) {
	table := newObjectTable(newMathRandSource())
	o := table.get(1)
	o.Movement.X, o.Movement.Y = 0, 0
	o.Flags.set(FlagAnimated)
	o.Flags.set(FlagUpdate)
	o.Flags.set(FlagDrawn)

	const completionFlag = 42
	startMoveToPoint(o, 10, 0, 100, completionFlag)

	var flagged bool
	table.onCompletion = func(flag byte) {
		if flag == completionFlag {
			flagged = true
		}
	}

	table.stepObject(o, 0, 0, 0)

	if o.Movement.X != 10 || o.Movement.Y != 0 {
		t.Errorf("position = (%d,%d), want (10,0)", o.Movement.X, o.Movement.Y)
	}
	if o.Movement.Motion != MotionNormal {
		t.Errorf("motion = %v, want MotionNormal after arrival", o.Movement.Motion)
	}
	if !flagged {
		t.Errorf("completion flag %d was not set", completionFlag)
	}
}

func TestMoveToPointStepsTowardsDestination(t *testing.T) {
	table := newObjectTable(newMathRandSource())
	o := table.get(1)
	o.Movement.X, o.Movement.Y = 0, 0
	o.Flags.set(FlagAnimated)
	o.Flags.set(FlagUpdate)
	o.Flags.set(FlagDrawn)

	startMoveToPoint(o, 100, 0, 5, 0)
	table.stepObject(o, 0, 0, 0)

	if o.Movement.X != 5 || o.Movement.Y != 0 {
		t.Errorf("position = (%d,%d), want (5,0) after one step", o.Movement.X, o.Movement.Y)
	}
	if o.Movement.Motion != MotionMoveToPoint {
		t.Errorf("motion = %v, want still MotionMoveToPoint mid-travel", o.Movement.Motion)
	}
}
