package gworkspace

import "testing"

func TestExtractFileID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0", "1AbC-d_9"},
		{"https://docs.google.com/document/d/xYz123/edit", "xYz123"},
		{"https://docs.google.com/presentation/d/p-42_a/edit?usp=sharing", "p-42_a"},
		{"https://drive.google.com/open?id=driveFile_7", "driveFile_7"},
		{"1AbC-d_9", "1AbC-d_9"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractFileID(tt.in); got != tt.want {
			t.Errorf("ExtractFileID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
