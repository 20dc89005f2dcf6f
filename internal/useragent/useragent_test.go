package useragent_test

import (
	"testing"

	"github.com/victornavas/unified-api/internal/useragent"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want useragent.Info
	}{
		{
			"chrome on windows desktop",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			useragent.Info{Browser: "Chrome", OS: "Windows", DeviceType: "Desktop"},
		},
		{
			"safari on iphone",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			useragent.Info{Browser: "Safari", OS: "iOS", DeviceType: "Mobile"},
		},
		{
			"empty header",
			"",
			useragent.Info{Browser: "Unknown", OS: "Unknown", DeviceType: "Desktop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := useragent.Classify(tt.ua); got != tt.want {
				t.Fatalf("Classify(%q) = %+v, want %+v", tt.ua, got, tt.want)
			}
		})
	}
}
