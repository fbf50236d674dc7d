package prompter

import (
	"reflect"
	"testing"
)

func TestParseMultiSelection(t *testing.T) {
	options := []string{"Pop", "Rock", "Jazz", "Soul"}

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single", "2", []string{"Rock"}, false},
		{"multiple", "1, 3", []string{"Pop", "Jazz"}, false},
		{"duplicates collapse", "2,2,2", []string{"Rock"}, false},
		{"order follows options", "4,1", []string{"Pop", "Soul"}, false},
		{"empty picks nothing", "", nil, false},
		{"out of range", "5", nil, true},
		{"zero", "0", nil, true},
		{"not a number", "rock", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMultiSelection(tt.input, options)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
