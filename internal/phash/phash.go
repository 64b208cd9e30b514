package phash

// Hasher maps one raw frame to a 64-bit perceptual hash. The pixel buffer
// holds packed RGB triplets, width*height*3 bytes, in scanline order.
type Hasher interface {
	Hash(pix []byte, width, height int) uint64
}

// DoubleGradient hashes a frame from its luminance gradients: 32 bits from
// horizontal brightness transitions sampled on a 9x4 grid and 32 bits from
// vertical transitions on a 4x9 grid. Mild re-encoding noise flips few bits,
// unrelated frames diverge across most of them.
type DoubleGradient struct{}

func (DoubleGradient) Hash(pix []byte, width, height int) uint64 {
	luma := lumaPlane(pix, width, height)

	var hash uint64
	bit := 0

	horizontal := resample(luma, width, height, 9, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if horizontal[y*9+x+1] > horizontal[y*9+x] {
				hash |= 1 << bit
			}
			bit++
		}
	}

	vertical := resample(luma, width, height, 4, 9)
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			if vertical[(y+1)*4+x] > vertical[y*4+x] {
				hash |= 1 << bit
			}
			bit++
		}
	}

	return hash
}

// lumaPlane converts packed RGB to a BT.601 luminance plane.
func lumaPlane(pix []byte, width, height int) []int {
	luma := make([]int, width*height)
	for i := range luma {
		off := i * 3
		if off+2 >= len(pix) {
			break
		}
		r := int(pix[off])
		g := int(pix[off+1])
		b := int(pix[off+2])
		luma[i] = (77*r + 150*g + 29*b) >> 8
	}
	return luma
}

// resample reduces the luminance plane to a gridW x gridH grid of block
// means. Blocks partition the plane, so every source pixel contributes to
// exactly one cell.
func resample(luma []int, width, height, gridW, gridH int) []int {
	grid := make([]int, gridW*gridH)
	for gy := 0; gy < gridH; gy++ {
		y0 := gy * height / gridH
		y1 := (gy + 1) * height / gridH
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for gx := 0; gx < gridW; gx++ {
			x0 := gx * width / gridW
			x1 := (gx + 1) * width / gridW
			if x1 <= x0 {
				x1 = x0 + 1
			}

			sum := 0
			count := 0
			for y := y0; y < y1 && y < height; y++ {
				for x := x0; x < x1 && x < width; x++ {
					sum += luma[y*width+x]
					count++
				}
			}
			if count > 0 {
				grid[gy*gridW+gx] = sum / count
			}
		}
	}
	return grid
}
