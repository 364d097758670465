package agi

import "fmt"

const (
	cmdSetPictureColor   = 0xF0
	cmdDisablePicture    = 0xF1
	cmdSetPriorityColor  = 0xF2
	cmdDisablePriority   = 0xF3
	cmdYCorner           = 0xF4
	cmdXCorner           = 0xF5
	cmdAbsoluteLine      = 0xF6
	cmdRelativeLine      = 0xF7
	cmdFill              = 0xF8
	cmdEndOfPicture       = 0xFF
)

// decodePicture interprets a picture resource's command stream into f. It
// does not clear the framebuffer first; callers (draw.pic vs overlay.pic)
// decide whether to Clear beforehand.
func decodePicture(f *Framebuffer, data []byte) error {
	r := newByteReader(data)

	for {
		b, err := r.u8()
		if err != nil {
			// ran off the end without an explicit 0xFF terminator; treat
			// as an implicit end of picture.
			return nil
		}

		switch b {
		case cmdEndOfPicture:
			return nil
		case cmdSetPictureColor:
			c, err := r.u8()
			if err != nil {
				return fmt.Errorf("picture: set picture color: %w", err)
			}
			f.setPictureColor(c)
		case cmdDisablePicture:
			f.disablePicture()
		case cmdSetPriorityColor:
			c, err := r.u8()
			if err != nil {
				return fmt.Errorf("picture: set priority color: %w", err)
			}
			f.setPriorityColor(c)
		case cmdDisablePriority:
			f.disablePriority()
		case cmdYCorner:
			if err := drawCorner(f, r, true); err != nil {
				return err
			}
		case cmdXCorner:
			if err := drawCorner(f, r, false); err != nil {
				return err
			}
		case cmdAbsoluteLine:
			if err := drawAbsoluteLine(f, r); err != nil {
				return err
			}
		case cmdRelativeLine:
			if err := drawRelativeLine(f, r); err != nil {
				return err
			}
		case cmdFill:
			if err := floodFillPoints(f, r); err != nil {
				return err
			}
		default:
			// Unknown picture opcode: treat like end of stream, matching
			// the VM's "unrecognised but well-formed data no-ops" policy.
			return nil
		}
	}
}

// nextIsCommand reports whether the next byte (without consuming it) is a
// picture command (>= 0xF0), i.e. whether a point-payload run has ended.
func nextIsCommand(r *byteReader) bool {
	b, err := r.peek()
	if err != nil {
		return true
	}
	return b >= 0xF0
}

func drawLineTo(f *Framebuffer, x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0
	adx, ady := abs(dx), abs(dy)

	if adx == 0 && ady == 0 {
		f.setPixel(x0, y0)
		return
	}

	if adx >= ady {
		step := 1
		if dx < 0 {
			step = -1
		}
		// Accumulate the minor axis in fixed point so it advances roughly
		// proportionally, matching the integer-stepping line algorithm.
		acc := 0
		y := y0
		for x := x0; ; x += step {
			f.setPixel(x, y)
			if x == x1 {
				break
			}
			acc += ady
			if acc*2 >= adx {
				if dy < 0 {
					y--
				} else {
					y++
				}
				acc -= adx
			}
		}
	} else {
		step := 1
		if dy < 0 {
			step = -1
		}
		acc := 0
		x := x0
		for y := y0; ; y += step {
			f.setPixel(x, y)
			if y == y1 {
				break
			}
			acc += adx
			if acc*2 >= ady {
				if dx < 0 {
					x--
				} else {
					x++
				}
				acc -= ady
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawCorner implements 0xF4 (y-first) / 0xF5 (x-first): an absolute start
// point, then alternating stepwise segments.
func drawCorner(f *Framebuffer, r *byteReader, yFirst bool) error {
	x, err := r.u8()
	if err != nil {
		return fmt.Errorf("picture: corner start x: %w", err)
	}
	y, err := r.u8()
	if err != nil {
		return fmt.Errorf("picture: corner start y: %w", err)
	}
	cx, cy := int(x), int(y)
	f.setPixel(cx, cy)

	vertical := yFirst
	for !nextIsCommand(r) {
		v, err := r.u8()
		if err != nil {
			return fmt.Errorf("picture: corner step: %w", err)
		}
		prevX, prevY := cx, cy
		if vertical {
			cy = int(v)
		} else {
			cx = int(v)
		}
		drawLineTo(f, prevX, prevY, cx, cy)
		vertical = !vertical
	}
	return nil
}

// drawAbsoluteLine implements 0xF6: pairs (x,y) drawing connected segments.
func drawAbsoluteLine(f *Framebuffer, r *byteReader) error {
	x, err := r.u8()
	if err != nil {
		return fmt.Errorf("picture: absolute line start x: %w", err)
	}
	y, err := r.u8()
	if err != nil {
		return fmt.Errorf("picture: absolute line start y: %w", err)
	}
	px, py := int(x), int(y)
	f.setPixel(px, py)

	for !nextIsCommand(r) {
		nx, err := r.u8()
		if err != nil {
			return fmt.Errorf("picture: absolute line x: %w", err)
		}
		ny, err := r.u8()
		if err != nil {
			return fmt.Errorf("picture: absolute line y: %w", err)
		}
		drawLineTo(f, px, py, int(nx), int(ny))
		px, py = int(nx), int(ny)
	}
	return nil
}

// drawRelativeLine implements 0xF7: an absolute start, then one byte per
// step encoding signed (dx,dy) nibbles in -7..7.
func drawRelativeLine(f *Framebuffer, r *byteReader) error {
	x, err := r.u8()
	if err != nil {
		return fmt.Errorf("picture: relative line start x: %w", err)
	}
	y, err := r.u8()
	if err != nil {
		return fmt.Errorf("picture: relative line start y: %w", err)
	}
	px, py := int(x), int(y)
	f.setPixel(px, py)

	for !nextIsCommand(r) {
		b, err := r.u8()
		if err != nil {
			return fmt.Errorf("picture: relative line step: %w", err)
		}
		dx := signedNibble(b >> 4)
		dy := signedNibble(b & 0x0f)
		nx, ny := px+dx, py+dy
		drawLineTo(f, px, py, nx, ny)
		px, py = nx, ny
	}
	return nil
}

// signedNibble decodes a 4-bit value whose top bit is the sign, magnitude
// in the low 3 bits (range -7..+7).
func signedNibble(n byte) int {
	mag := int(n & 0x07)
	if n&0x08 != 0 {
		return -mag
	}
	return mag
}

// floodFillPoints implements 0xF8: for each (x,y) pair, flood fill both
// planes from (x,y) subject to enable flags and canFill.
func floodFillPoints(f *Framebuffer, r *byteReader) error {
	for !nextIsCommand(r) {
		x, err := r.u8()
		if err != nil {
			return fmt.Errorf("picture: fill x: %w", err)
		}
		y, err := r.u8()
		if err != nil {
			return fmt.Errorf("picture: fill y: %w", err)
		}
		floodFill(f, int(x), int(y))
	}
	return nil
}

// canFill implements the picture decoder's fill predicate: if the picture
// plane is enabled and the fill color isn't white, fillable iff the
// picture pixel is white; else if only the priority plane is enabled,
// fillable iff the priority pixel is red; otherwise not fillable.
func canFill(f *Framebuffer, x, y int) bool {
	if f.pictureOn && f.pictureColor != colorWhite {
		return f.GetPicturePixel(x, y) == colorWhite
	}
	if f.priorityOn {
		return f.GetPriorityPixel(x, y) == colorRed
	}
	return false
}

// floodFill performs a 4-connected flood fill bounded to the logical
// 160x200 grid, using an explicit stack (the picture data is attacker-
// controlled input; an unbounded recursive fill is not safe).
func floodFill(f *Framebuffer, x, y int) {
	if !f.inBounds(x, y) || !canFill(f, x, y) {
		return
	}

	type point struct{ x, y int }
	stack := []point{{x, y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.inBounds(p.x, p.y) || !canFill(f, p.x, p.y) {
			continue
		}

		f.setPixel(p.x, p.y)

		stack = append(stack,
			point{p.x + 1, p.y},
			point{p.x - 1, p.y},
			point{p.x, p.y + 1},
			point{p.x, p.y - 1},
		)
	}
}
