package components

import "testing"

func TestUIStateString(t *testing.T) {
	tests := []struct {
		state UIState
		want  string
	}{
		{UINormal, "normal"},
		{UIHovered, "hovered"},
		{UIClicked, "clicked"},
		{UIDisabled, "disabled"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("UIState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}

	if got := UIState(42).String(); got != "unknown" {
		t.Errorf("out-of-range state: got %q", got)
	}
}
