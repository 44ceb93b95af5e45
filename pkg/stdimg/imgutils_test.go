package stdimg

import (
	"image"
	"image/color"
	"testing"
)

func TestToNRGBAFromPaletted(t *testing.T) {
	pal := color.Palette{color.NRGBA{10, 20, 30, 255}, color.NRGBA{40, 50, 60, 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	src.SetColorIndex(0, 0, 1)
	out := ToNRGBA(src)
	if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds: %v", out.Bounds())
	}
	i := out.PixOffset(0, 0)
	if out.Pix[i+0] != 40 || out.Pix[i+1] != 50 || out.Pix[i+2] != 60 {
		t.Fatalf("unexpected pixel: %v", out.Pix[i:i+4])
	}
}

func TestCloneNRGBAIsIndependent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Pix[0] = 1
	out := CloneNRGBA(src)
	out.Pix[0] = 2
	if src.Pix[0] != 1 {
		t.Fatalf("clone aliased the source buffer")
	}
}

func TestParseHexColorForms(t *testing.T) {
	cases := []string{"#fff", "#ffffff", "#ff0000ff", "red", "cornflowerblue"}
	for _, c := range cases {
		if _, err := ParseHexColor(c); err != nil {
			t.Errorf("ParseHexColor(%q) failed: %v", c, err)
		}
	}
	if _, err := ParseHexColor("not-a-color"); err == nil {
		t.Errorf("expected error for invalid color")
	}
}
