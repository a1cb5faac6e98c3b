package ppmfx

import (
	"reflect"
	"testing"
)

func TestMotionBlur_ConstantImageUnchanged(t *testing.T) {
	src := New(7, 3)
	for i := range src.pix {
		src.pix[i] = Color{60, 120, 180}
	}

	if got := MotionBlur(src); !reflect.DeepEqual(got, src) {
		t.Error("motion blur of a constant image changed pixels")
	}
}

func TestMotionBlur_SingleColumnUnchanged(t *testing.T) {
	// Width 1: the window always holds exactly one sample.
	src := New(1, 4)
	for y := 0; y < 4; y++ {
		src.SetPixel(0, y, Color{int32(y * 50), 0, 0})
	}

	if got := MotionBlur(src); !reflect.DeepEqual(got, src) {
		t.Error("motion blur of a 1-wide image changed pixels")
	}
}

func TestMotionBlur_WindowTruncation(t *testing.T) {
	// R values 10 20 30 40 50 across a single row. The window shrinks
	// toward the right edge, so each output is the average of the
	// remaining samples.
	src := New(5, 1)
	for x := 0; x < 5; x++ {
		src.SetPixel(x, 0, Color{int32((x + 1) * 10), 0, 0})
	}

	out := MotionBlur(src)
	want := []int32{30, 35, 40, 45, 50}
	for x, w := range want {
		if got := out.GetPixel(x, 0); got != (Color{w, 0, 0}) {
			t.Errorf("pixel (%d, 0) = %v, want {%d 0 0}", x, got, w)
		}
	}
}

func TestMotionBlur_RoundsHalfAwayFromZero(t *testing.T) {
	// 10 and 15 average to 12.5 at x=0; rounds to 13.
	src := New(2, 1)
	src.SetPixel(0, 0, Color{10, 0, 0})
	src.SetPixel(1, 0, Color{15, 0, 0})

	out := MotionBlur(src)
	if got := out.GetPixel(0, 0); got != (Color{13, 0, 0}) {
		t.Errorf("pixel (0, 0) = %v, want {13 0 0}", got)
	}
	if got := out.GetPixel(1, 0); got != (Color{15, 0, 0}) {
		t.Errorf("pixel (1, 0) = %v, want {15 0 0}", got)
	}
}
