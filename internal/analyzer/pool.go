package analyzer

import (
	"image"
	"sync"
)

// slicePool recycles the grayscale buffers slices are converted into while
// one histogram is built. Slices of a stack nearly always share one size.
type slicePool struct {
	bySize sync.Map // image.Point -> *sync.Pool
}

// get returns a buffer of the given size; its pixels are overwritten by the caller
func (p *slicePool) get(size image.Point) *image.Gray {
	if v, ok := p.bySize.Load(size); ok {
		if img, ok := v.(*sync.Pool).Get().(*image.Gray); ok {
			return img
		}
	} else {
		p.bySize.LoadOrStore(size, &sync.Pool{})
	}
	return image.NewGray(image.Rectangle{Max: size})
}

func (p *slicePool) put(img *image.Gray) {
	if img == nil {
		return
	}
	if v, ok := p.bySize.Load(img.Rect.Size()); ok {
		v.(*sync.Pool).Put(img)
	}
}
