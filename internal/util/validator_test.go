package util

import (
	"testing"
)

func TestParsePointValue_Numbers(t *testing.T) {
	cases := map[interface{}]int{
		float64(5):   5,
		float64(-3):  -3,
		float64(0):   0,
		"7":          7,
		" 12 ":       12,
		"-4":         -4,
	}

	for in, want := range cases {
		got, err := ParsePointValue(in)
		if err != nil {
			t.Errorf("ParsePointValue(%v) error = %v, want nil", in, err)
		}
		if got != want {
			t.Errorf("ParsePointValue(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestParsePointValue_Invalid(t *testing.T) {
	cases := []interface{}{nil, true, "abc", "5.7", float64(5.7), []int{1}}

	for _, in := range cases {
		if _, err := ParsePointValue(in); err == nil {
			t.Errorf("ParsePointValue(%v) error = nil, want error", in)
		}
	}
}

func TestNormalizeRepeat(t *testing.T) {
	cases := []struct {
		in   string
		want string // "<nil>" means no recurrence
	}{
		{"", "as_needed"},
		{"  ", "as_needed"},
		{"daily", "daily"},
		{"Weekly", "weekly"},
		{" AS_NEEDED ", "as_needed"},
		{"none", "<nil>"},
		{"null", "<nil>"},
		{"NULL", "<nil>"},
	}

	for _, tc := range cases {
		got := NormalizeRepeat(tc.in)
		if tc.want == "<nil>" {
			if got != nil {
				t.Errorf("NormalizeRepeat(%q) = %q, want nil", tc.in, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("NormalizeRepeat(%q) = %v, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAvatarExt_Allowed(t *testing.T) {
	cases := map[string]string{
		"face.png":     "png",
		"me.JPG":       "jpg",
		"photo.jpeg":   "jpeg",
		"anim.gif":     "gif",
		"pic.webp":     "webp",
		"a.b.c.png":    "png",
	}

	for in, want := range cases {
		ext, ok := AvatarExt(in)
		if !ok || ext != want {
			t.Errorf("AvatarExt(%q) = %q, %v, want %q, true", in, ext, ok, want)
		}
	}
}

func TestAvatarExt_Rejected(t *testing.T) {
	cases := []string{"", "noext", "script.exe", "archive.tar.gz", "trailingdot."}

	for _, in := range cases {
		if _, ok := AvatarExt(in); ok {
			t.Errorf("AvatarExt(%q) ok = true, want false", in)
		}
	}
}
