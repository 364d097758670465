package agi

// execPictureManagement implements the picture-management command family:
// decoding a picture resource into the off-screen picBuf and publishing it
// to the visible framebuffer. show.pic is the only point at which picBuf's
// contents become visible, per §8's worked scenario: the reference
// interpreter republishes on every cycle regardless of whether a new
// picture was drawn, which would stomp sprite compositing done against fb
// in between; this only copies on an explicit show.pic.
func (vm *vmState) execPictureManagement(cmd byte, args []byte) error {
	switch cmd {
	case opDrawPic:
		payload, err := vm.pics.get(int(args[0]))
		if err != nil {
			return err
		}
		vm.picBuf.Clear()
		return decodePicture(vm.picBuf, payload)

	case opShowPic:
		*vm.fb = *vm.picBuf

	case opOverlayPic:
		payload, err := vm.pics.get(int(args[0]))
		if err != nil {
			return err
		}
		return decodePicture(vm.picBuf, payload)

	case opShowPriScreen:
		vm.showPriorityScreen = !vm.showPriorityScreen
	}
	return nil
}
