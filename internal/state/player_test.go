package state

import "testing"

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		in      string
		want    Player
		wantErr bool
	}{
		{"browser", PlayerBrowser, false},
		{"mpv", PlayerMPV, false},
		{"streamlink", PlayerStreamlink, false},
		{"  MPV  ", PlayerMPV, false},
		{"Browser", PlayerBrowser, false},
		{"", PlayerBrowser, true},
		{"vlc", PlayerBrowser, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlayer(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlayer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParsePlayer(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlayerString_RoundTrips(t *testing.T) {
	for _, p := range Players() {
		parsed, err := ParsePlayer(p.String())
		if err != nil {
			t.Fatalf("ParsePlayer(%q) error: %v", p.String(), err)
		}
		if parsed != p {
			t.Fatalf("round trip %v -> %q -> %v", p, p.String(), parsed)
		}
	}
}
