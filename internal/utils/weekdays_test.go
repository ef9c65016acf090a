package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "full names",
			input: "saturday,sunday",
			want:  []time.Weekday{time.Saturday, time.Sunday},
		},
		{
			name:  "numeric indices",
			input: "1,2,3,4,5",
			want:  []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		},
		{
			name:  "mixed case and whitespace",
			input: " Mon , TUE ",
			want:  []time.Weekday{time.Monday, time.Tuesday},
		},
		{
			name:    "invalid name",
			input:   "mon,funday",
			wantErr: true,
		},
		{
			name:    "index out of range",
			input:   "7",
			wantErr: true,
		},
		{
			name:    "empty part",
			input:   "mon,,fri",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeekdays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatWeekdays(t *testing.T) {
	got := FormatWeekdays([]time.Weekday{time.Monday, time.Wednesday, time.Friday})
	if got != "Mon,Wed,Fri" {
		t.Errorf("FormatWeekdays() = %q, want %q", got, "Mon,Wed,Fri")
	}
}
