package core

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, "default"},
		{ColorBrightCyan, "light-blue"},
		{ColorPurple, "purple"},
		{Color(200), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
