package buildinfo

import "testing"

func TestShort(t *testing.T) {
	tcs := []struct {
		name                      string
		version, commit, revision string
		want                      string
	}{
		{name: "version", version: "v1.2.0", commit: "abc", revision: "def", want: "v1.2.0"},
		{name: "commit", version: "dev", commit: "abc", revision: "def", want: "abc"},
		{name: "revision", version: "dev", commit: "unknown", revision: "0123456789abcdef", want: "0123456789ab"},
		{name: "nothing", version: "", commit: "", revision: "", want: "dev"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := short(tc.version, tc.commit, tc.revision); got != tc.want {
				t.Fatalf("short(%q, %q, %q) = %q; want %q", tc.version, tc.commit, tc.revision, got, tc.want)
			}
		})
	}
}
