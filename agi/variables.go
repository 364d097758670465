package agi

// Variable indices, per §6's selection table.
const (
	varCurrentRoom        = 0
	varPreviousRoom       = 1
	varEgoTouchCode       = 2
	varScore              = 3
	varBorderTouchObj     = 4
	varObjectTouchCode    = 5
	varEgoDirection       = 6
	varMaxScore           = 7
	varFreeMemPages       = 8
	varMismatchedWords    = 9
	varCycleDelay         = 10
	varClockSec           = 11
	varClockMin           = 12
	varClockHour          = 13
	varClockDay           = 14
	varJoystickSens       = 15
	varEgoView            = 16
	varErrorCode          = 17
	varErrorInfo          = 18
	varPressedKey         = 19
	varComputerType       = 20
	varMessageWindowTimer = 21
	varSoundType          = 22
	varSoundVolume        = 23
	varInputBufferSize    = 24
	varSelectedInventory  = 25
	varMonitorType        = 26
)

// Flag indices, per §6's selection table.
const (
	flagPlayerCommandEntered = 2
	flagUserInputAccepted    = 4
	flagRoomScriptFirstRun   = 5
	flagRestartCmdExecuted   = 6
	flagSoundEnabled         = 9
	flagFirstLogic0Execution = 11
	flagRestoreGameExecuted  = 12
	flagEnableMenu           = 14
	flagNonBlockingWindows   = 15
)
