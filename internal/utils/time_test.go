package utils

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "08:30", want: 510},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "missing leading zero", input: "8:30", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeToMinutes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeToMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateTimeFormat(t *testing.T) {
	if !ValidateTimeFormat("07:45") {
		t.Error("ValidateTimeFormat(07:45) = false, want true")
	}
	if ValidateTimeFormat("7:45pm") {
		t.Error("ValidateTimeFormat(7:45pm) = true, want false")
	}
}
