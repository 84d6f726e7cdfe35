package scenes

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/circles"
)

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range Names() {
		if seen[name] {
			t.Errorf("duplicate scene name %q", name)
		}
		seen[name] = true

		s, ok := Find(name)
		if !ok {
			t.Errorf("scene %q not found", name)
			continue
		}
		if err := s.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		for _, r := range s.Name {
			if (r < 'a' || r > 'z') && r != '_' {
				t.Errorf("invalid character %q in scene name %q", r, s.Name)
			}
		}
	}
	for _, name := range []string{"basic_lens", "basic_single", "basic_annulus", "basic_triangle", "basic_disjoint"} {
		if !seen[name] {
			t.Errorf("missing scene %q", name)
		}
	}
}

func TestFindUnknown(t *testing.T) {
	for _, name := range []string{"", "basic", "basic_", "nothing_lens", "basic_missing"} {
		if _, ok := Find(name); ok {
			t.Errorf("Find(%q) succeeded", name)
		}
	}
}

// TestLoopCounts checks the number of boundary loops of the built-in
// scenes.
func TestLoopCounts(t *testing.T) {
	want := map[string]int{
		"basic_lens":          1,
		"basic_single":        1,
		"basic_annulus":       2,
		"basic_triangle":      1,
		"basic_disjoint":      0,
		"inverted_lens_hole":  2,
		"inverted_crescent":   1,
		"inverted_bite":       1,
		"inverted_ring_holes": 7,
		"stress_flower":       1,
		"stress_grid_holes":   26,
		"stress_chain":        3,
	}
	for name, n := range want {
		t.Run(name, func(t *testing.T) {
			s, ok := Find(name)
			if !ok {
				t.Fatal("scene not found")
			}
			loops := circles.Loops(s.Circles, s.Options())
			if len(loops) != n {
				t.Errorf("got %d loops, want %d", len(loops), n)
			}
			for i, l := range loops {
				if !l.Closed(circles.DefaultEpsilon) {
					t.Errorf("loop %d is not closed", i)
				}
			}
		})
	}
}

const lensFile = `
name = "lens"
width = 300
height = 200
polygon_points = 80

[[circle]]
x = 0.0
y = 0.0
r = 5.0

[[circle]]
x = 6.0
y = 0.0
r = 5.0
inverted = false
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(lensFile))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Find("basic_lens")
	want.Width = 300
	want.Height = 200
	want.PolygonPoints = 80
	if d := cmp.Diff(&want, s); d != "" {
		t.Errorf("unexpected scene (-want +got):\n%s", d)
	}
}

func TestDecodeDefaults(t *testing.T) {
	s, err := Decode(strings.NewReader("[[circle]]\nx = 1\ny = 2\nr = 3\ninverted = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("got size %dx%d", s.Width, s.Height)
	}
	if len(s.Circles) != 1 || !s.Circles[0].Inverted || s.Circles[0].Radius != 3 {
		t.Errorf("unexpected circles %v", s.Circles)
	}
	opt := s.Options()
	if opt.Epsilon != 0 || opt.PolygonPoints != 0 {
		t.Errorf("unexpected options %+v", opt)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		field string // non-empty for validation errors
	}{
		{"syntax", "name = ", ""},
		{"unknown", "name = \"x\"\ncolour = 3\n", ""},
		{"zeroRadius", "[[circle]]\nx = 0\ny = 0\nr = 0\n", "r"},
		{"negativeRadius", "[[circle]]\nx = 0\ny = 0\nr = 1\n[[circle]]\nx = 0\ny = 0\nr = -2\n", "r"},
		{"nan", "[[circle]]\nx = nan\ny = 0\nr = 1\n", "x"},
		{"inf", "[[circle]]\nx = 0\ny = inf\nr = 1\n", "y"},
		{"epsilon", "epsilon = -1.0\n", "epsilon"},
		{"width", "width = -5\n", "width"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			if err == nil {
				t.Fatal("no error")
			}
			var verr *ValidationError
			isValidation := errors.As(err, &verr)
			if tc.field == "" {
				if isValidation {
					t.Errorf("unexpected validation error %v", err)
				}
				return
			}
			if !isValidation {
				t.Fatalf("got %v, want a validation error", err)
			}
			if verr.Field != tc.field {
				t.Errorf("error names field %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestValidationErrorIndex(t *testing.T) {
	s := Scene{Circles: []circles.Circle{disk(0, 0, 1), disk(1, 1, math.Inf(1))}}
	err := s.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Circle != 1 {
		t.Fatalf("got %v, want an error for circle 1", err)
	}
	if !strings.Contains(err.Error(), "circle 1") {
		t.Errorf("error message %q does not name the circle", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, _ := Find(name)
			buf := &bytes.Buffer{}
			if err := s.Encode(buf); err != nil {
				t.Fatal(err)
			}
			got, err := Decode(buf)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(&s, got); d != "" {
				t.Errorf("round trip changed the scene (-want +got):\n%s", d)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "two_disks.toml")
	body := strings.Replace(lensFile, `name = "lens"`, "", 1)
	if err := os.WriteFile(fileName, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "two_disks" {
		t.Errorf("got name %q, want %q", s.Name, "two_disks")
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
}
