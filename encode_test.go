package ppmfx

import (
	"reflect"
	"testing"
)

func TestEncode_Golden(t *testing.T) {
	img := New(2, 1)
	img.SetPixel(0, 0, Color{1, 2, 3})
	img.SetPixel(1, 0, White)

	want := "P3\n2 1\n255\n1 2 3\n255 255 255\n"
	if got := Encode(img); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ClampsUnclampedChannels(t *testing.T) {
	img := New(1, 1)
	img.SetPixel(0, 0, Color{-5, 300, 128})

	want := "P3\n1 1\n255\n0 255 128\n"
	if got := Encode(img); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeDecode_Roundtrip(t *testing.T) {
	img := New(3, 2)
	colors := []Color{
		{0, 0, 0}, {255, 255, 255}, {1, 2, 3},
		{200, 100, 50}, {0, 255, 0}, {17, 0, 255},
	}
	for i, c := range colors {
		img.SetPixel(i%3, i/3, c)
	}

	back, err := Decode(Encode(img))
	if err != nil {
		t.Fatalf("Decode(Encode()) = %v", err)
	}
	if !reflect.DeepEqual(back, img) {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", back, img)
	}
}
