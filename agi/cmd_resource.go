package agi

// execResourceManagement implements the resource-management command
// family: force-reloading logic scripts and warming/discarding the
// picture and view caches.
func (vm *vmState) execResourceManagement(cmd byte, args []byte) error {
	switch cmd {
	case opLoadLogic:
		return vm.scripts.forceLoad(int(args[0]))
	case opLoadLogicV:
		return vm.scripts.forceLoad(int(vm.vars[args[0]]))

	case opLoadPic:
		_, err := vm.pics.get(int(args[0]))
		return err
	case opDiscardPic:
		vm.pics.discard(int(args[0]))

	case opLoadView:
		_, err := vm.views.get(int(args[0]))
		return err
	case opLoadViewV:
		_, err := vm.views.get(int(vm.vars[args[0]]))
		return err
	case opDiscardView:
		vm.views.discard(int(args[0]))
	}
	return nil
}
