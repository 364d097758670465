package agi

// execTextManagement implements the text-management command family's two
// retained opcodes: displaying a script message at a screen position and
// clearing a row range to a solid color.
func (vm *vmState) execTextManagement(cmd byte, args []byte) error {
	switch cmd {
	case opDisplay:
		row, col, msgIdx := args[0], args[1], args[2]
		f := vm.top()
		if f == nil {
			return nil
		}
		msg := f.script.Message(int(msgIdx))
		if msg == nil {
			return nil
		}
		vm.fb.DrawText(int(row), int(col), *msg)

	case opClearLines:
		r1, r2, color := args[0], args[1], args[2]
		vm.fb.ClearLines(int(r1), int(r2), color)
	}
	return nil
}
