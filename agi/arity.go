package agi

// CommandFamily groups opcodes by the handler that interprets them, per
// §4.7's "Command dispatch" table.
type CommandFamily byte

const (
	FamilyArithmetic CommandFamily = iota
	FamilyProgramControl
	FamilyResourceManagement
	FamilyObjectDescription
	FamilyObjectMotion
	FamilyInventoryItem
	FamilyPictureManagement
	FamilySound
	FamilyTextManagement
	FamilyStringManagement
	FamilyInitialization
	FamilyMenuManagement
	FamilyOther
)

// opcodeArity is the 182-entry fixed-argument-count table: how many
// argument bytes follow each opcode in the code stream. Adopted verbatim
// from the reference interpreter's ArgumentCount table.
var opcodeArity = [182]byte{
	0, 1, 1, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 0, 1, 1, 0, 1, 1,
	1, 1, 0, 1, 1, 3, 3, 3,
	3, 2, 2, 2, 2, 1, 1, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
	1, 2, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 3, 1, 1,
	1, 2, 1, 2, 2, 1, 1, 2,
	2, 5, 5, 3, 1, 1, 2, 2,
	1, 1, 4, 0, 1, 1, 1, 2,
	2, 2, 1, 2, 0, 1, 1, 3,
	3, 3, 0, 0, 1, 2, 1, 3,
	0, 0, 2, 5, 2, 1, 2, 0,
	0, 3, 7, 7, 0, 0, 0, 0,
	0, 1, 3, 0, 0, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 1, 1,
	1, 0, 0, 3, 3, 0, 3, 4,
	4, 1, 5, 2, 1, 2, 0, 1,
	1, 0, 1, 0, 0, 2, 2, 2,
	2, 0, 1, 0, 0, 0, 1, 1,
	0, 1, 0, 4, 2, 0,
}

// opcodeFamily is the per-opcode family table, adopted from the reference
// interpreter's CmdTypes table (the trailing indices 169..181 are assigned
// FamilyOther).
var opcodeFamily = [182]CommandFamily{
	FamilyProgramControl,
	FamilyArithmetic, FamilyArithmetic, FamilyArithmetic, FamilyArithmetic,
	FamilyArithmetic, FamilyArithmetic, FamilyArithmetic, FamilyArithmetic,
	FamilyArithmetic, FamilyArithmetic, FamilyArithmetic, FamilyArithmetic,
	FamilyArithmetic, FamilyArithmetic, FamilyArithmetic, FamilyArithmetic,
	FamilyArithmetic,
	FamilyProgramControl, FamilyProgramControl,
	FamilyResourceManagement, FamilyResourceManagement,
	FamilyProgramControl, FamilyProgramControl,
	FamilyResourceManagement,
	FamilyPictureManagement, FamilyPictureManagement,
	FamilyResourceManagement,
	FamilyPictureManagement,
	FamilyOther,
	FamilyResourceManagement, FamilyResourceManagement, FamilyResourceManagement,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription,
	FamilyObjectMotion,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription, FamilyObjectDescription, FamilyObjectDescription,
	FamilyObjectDescription,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyObjectMotion, FamilyObjectMotion, FamilyObjectMotion,
	FamilyInventoryItem, FamilyInventoryItem, FamilyInventoryItem,
	FamilyInventoryItem, FamilyInventoryItem, FamilyInventoryItem,
	FamilySound, FamilySound, FamilySound,
	FamilyTextManagement, FamilyTextManagement, FamilyTextManagement,
	FamilyTextManagement, FamilyTextManagement, FamilyTextManagement,
	FamilyTextManagement, FamilyTextManagement, FamilyTextManagement,
	FamilyOther, FamilyOther,
	FamilyTextManagement, FamilyTextManagement,
	FamilyStringManagement, FamilyStringManagement, FamilyStringManagement,
	FamilyStringManagement, FamilyStringManagement,
	FamilyTextManagement, FamilyTextManagement,
	FamilyInitialization,
	FamilyPictureManagement, FamilyPictureManagement,
	FamilyInventoryItem,
	FamilyOther, FamilyOther, FamilyOther, FamilyOther,
	FamilyOther,
	FamilyArithmetic,
	FamilyObjectMotion, FamilyObjectMotion,
	FamilyOther, FamilyOther, FamilyOther, FamilyOther, FamilyOther,
	FamilyOther, FamilyOther, FamilyOther,
	FamilyTextManagement,
	FamilyInitialization, FamilyInitialization, FamilyInitialization,
	FamilyProgramControl, FamilyProgramControl,
	FamilyObjectMotion, FamilyObjectMotion,
	FamilyInitialization, FamilyInitialization,
	FamilyTextManagement, FamilyTextManagement,
	FamilyResourceManagement,
	FamilyTextManagement,
	FamilyOther,
	FamilyMenuManagement, FamilyMenuManagement, FamilyMenuManagement,
	FamilyMenuManagement, FamilyMenuManagement, FamilyMenuManagement,
	FamilyOther, FamilyOther, FamilyOther,
	FamilyArithmetic, FamilyArithmetic, FamilyArithmetic, FamilyArithmetic,
	FamilyOther,
	// 169..181: conservatively Other.
	FamilyOther, FamilyOther, FamilyOther, FamilyOther, FamilyOther, FamilyOther,
	FamilyOther, FamilyOther, FamilyOther, FamilyOther, FamilyOther, FamilyOther,
	FamilyOther,
}

// Named opcodes: the subset of the 182-entry table whose semantics spec.md
// §4.7 and §10 name explicitly. Everything else in the table is a
// correctly-aritied no-op, per spec.md §7's policy.
const (
	opReturn       = 0
	opIncrement    = 1
	opDecrement    = 2
	opAssignN      = 3
	opAssignV      = 4
	opAddN         = 5
	opAddV         = 6
	opSubN         = 7
	opSubV         = 8
	opLindirectV   = 9
	opRindirect    = 10
	opLindirectN   = 11
	opSet          = 12
	opReset        = 13
	opToggle       = 14
	opSetV         = 15
	opResetV       = 16
	opToggleV      = 17
	opNewRoom      = 18
	opNewRoomV     = 19
	opLoadLogic    = 20
	opLoadLogicV   = 21
	opCall         = 22
	opCallV        = 23
	opLoadPic      = 24
	opDrawPic      = 25
	opShowPic      = 26
	opDiscardPic   = 27
	opOverlayPic   = 28
	opShowPriScreen = 29
	opLoadView     = 30
	opLoadViewV    = 31
	opDiscardView  = 32
	opAnimateObj   = 33
	opUnanimateAll = 34
	opDraw         = 35
	opErase        = 36
	opPosition     = 37
	opPositionV    = 38
	opGetPosn      = 39
	opReposition   = 40
	opSetView      = 41
	opSetViewV     = 42
	opSetLoop      = 43
	opSetLoopV     = 44
	opFixLoop      = 45
	opReleaseLoop  = 46
	opSetCel       = 47
	opSetCelV      = 48
	opLastCel      = 49
	opCurrentCel   = 50
	opCurrentLoop  = 51
	opCurrentView  = 52
	opNumberOfLoops = 53
	opSetPriority  = 54
	opSetPriorityV = 55
	opReleasePriority = 56
	opGetPriority  = 57
	opStopUpdate   = 58
	opStartUpdate  = 59
	opForceUpdate  = 60
	opIgnoreHorizon = 61
	opObserveHorizon = 62
	opSetHorizon   = 63
	opObjectOnWater = 64
	opObjectOnLand = 65
	opObjectOnAnything = 66
	opIgnoreObjs   = 67
	opObserveObjs  = 68
	opDistance     = 69
	opStopCycling  = 70
	opStartCycling = 71
	opNormalCycle  = 72
	opEndOfLoop    = 73
	opReverseCycle = 74
	opReverseLoop  = 75
	opCycleTime    = 76
	opStopMotion   = 77
	opStartMotion  = 78
	opStepSize     = 79
	opStepTime     = 80
	opMoveObj      = 81
	opMoveObjV     = 82
	opDisplay      = 103
	opClearLines   = 104
	opRandom       = 130
	opProgramControl = 131
	opPlayerControl  = 132
)
