package memory

import "testing"

func TestLikeEscaperNeutralizesWildcards(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"milk", "milk"},
		{"100% juice", `100\% juice`},
		{"egg_whites", `egg\_whites`},
		{`back\slash`, `back\\slash`},
	}

	for _, tc := range cases {
		if got := likeEscaper.Replace(tc.in); got != tc.want {
			t.Errorf("escape %q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}
