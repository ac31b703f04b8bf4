package engine

import "testing"

func TestReadIntHealsMalformedValues(t *testing.T) {
	svc, st, _ := newTestService(t)

	cases := []struct {
		stored string
		want   int64
		healed string
	}{
		{"7", 7, "7"},
		{"7.9", 7, "7.9"}, // floored on read, left stored
		{" 12 ", 12, " 12 "},
		{"abc", 0, "0"},
		{"-3", 0, "0"},
		{"NaN", 0, "0"},
		{"Inf", 0, "0"},
	}
	for _, c := range cases {
		st.Set(keyStarsTotal, c.stored)
		if got := svc.readInt(keyStarsTotal, 0); got != c.want {
			t.Fatalf("readInt(%q) = %d, want %d", c.stored, got, c.want)
		}
		if got := st.Get(keyStarsTotal, ""); got != c.healed {
			t.Fatalf("stored value after reading %q = %q, want %q", c.stored, got, c.healed)
		}
	}
}

func TestReadBoolOnlyTrueIsTrue(t *testing.T) {
	svc, st, _ := newTestService(t)

	for _, v := range []string{"", "false", "TRUE", "1", "yes"} {
		if v != "" {
			st.Set(keyTimeEnabled, v)
		}
		if svc.readBool(keyTimeEnabled) {
			t.Fatalf("readBool(%q) = true", v)
		}
	}
	st.Set(keyTimeEnabled, "true")
	if !svc.readBool(keyTimeEnabled) {
		t.Fatalf("readBool(true) = false")
	}
}
