package treemodel

import "testing"

func TestSubhaloType_String(t *testing.T) {
	cases := map[SubhaloType]string{
		SubhaloUndetermined: "undetermined",
		SubhaloCentral:      "central",
		SubhaloSatellite:    "satellite",
		SubhaloType(99):     "undetermined",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Errorf("SubhaloType(%d).String() = %q, want %q", in, got, want)
		}
	}
}
