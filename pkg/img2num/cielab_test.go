package img2num

import "testing"

func TestSrgbLabRoundTripWithinOne(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 23 {
			for b := 0; b <= 255; b += 29 {
				l, a, lb, _ := SrgbToLab(uint8(r), uint8(g), uint8(b), 255)
				r2, g2, b2, _ := LabToSrgb(l, a, lb, 255)
				if diff := absInt(int(r)-int(r2)); diff > 1 {
					t.Fatalf("R round trip off by %d for (%d,%d,%d)", diff, r, g, b)
				}
				if diff := absInt(int(g)-int(g2)); diff > 1 {
					t.Fatalf("G round trip off by %d for (%d,%d,%d)", diff, r, g, b)
				}
				if diff := absInt(int(b)-int(b2)); diff > 1 {
					t.Fatalf("B round trip off by %d for (%d,%d,%d)", diff, r, g, b)
				}
			}
		}
	}
}

func TestLabLClampedToZeroHundred(t *testing.T) {
	l, _, _, _ := SrgbToLab(0, 0, 0, 255)
	if l < 0 || l > 100 {
		t.Fatalf("L out of range: %v", l)
	}
	l, _, _, _ = SrgbToLab(255, 255, 255, 255)
	if l < 0 || l > 100 {
		t.Fatalf("L out of range: %v", l)
	}
	if l < 99.9 {
		t.Fatalf("white should have L close to 100, got %v", l)
	}
}

func TestRgbaToLabaAlphaPreserved(t *testing.T) {
	src := NewRgba8(2, 2)
	src.Set(0, 0, 10, 20, 30, 128)
	lab, err := RgbaToLaba(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, _, alpha := lab.At(0, 0)
	if alpha != 128 {
		t.Fatalf("expected alpha 128, got %v", alpha)
	}
	back := LabaToRgba(lab)
	_, _, _, a2 := back.At(0, 0)
	if a2 != 128 {
		t.Fatalf("expected alpha 128 after conversion back, got %v", a2)
	}
}
