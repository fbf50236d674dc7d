package output

import (
	"strings"
	"testing"

	"github.com/soundreel/cli/pkg/config"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"json", "table", "text"} {
		if !ValidateFormat(f) {
			t.Errorf("ValidateFormat(%q) = false, want true", f)
		}
	}
	for _, f := range []string{"", "yaml", "JSON"} {
		if ValidateFormat(f) {
			t.Errorf("ValidateFormat(%q) = true, want false", f)
		}
	}
}

func TestGetFormatDefaultsToText(t *testing.T) {
	config.SetString("output.format", "")
	if got := GetFormat(); got != FormatText {
		t.Errorf("GetFormat() = %s, want text", got)
	}

	config.SetString("output.format", "json")
	if got := GetFormat(); got != FormatJSON {
		t.Errorf("GetFormat() = %s, want json", got)
	}
	config.SetString("output.format", "text")
}

func TestFormatAsJSON(t *testing.T) {
	got, err := FormatAsJSON(map[string]string{"userName": "alice"})
	if err != nil {
		t.Fatalf("FormatAsJSON failed: %v", err)
	}
	if !strings.Contains(got, `"userName":"alice"`) {
		t.Errorf("FormatAsJSON = %s", got)
	}
}

func TestFormatAsPrettyJSON(t *testing.T) {
	got, err := FormatAsPrettyJSON(map[string]int{"likesCount": 3})
	if err != nil {
		t.Fatalf("FormatAsPrettyJSON failed: %v", err)
	}
	if !strings.Contains(got, "\"likesCount\": 3") {
		t.Errorf("FormatAsPrettyJSON = %s", got)
	}
}
