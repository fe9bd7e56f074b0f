package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
		wantOK bool
	}{
		{"panama mobile without prefix", "6123-4567", "", "+50761234567", true},
		{"already e164", "+50761234567", "", "+50761234567", true},
		{"explicit region", "(212) 555-0123", "US", "+12125550123", true},
		{"garbage", "not a phone", "", "", false},
		{"too short", "12", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeE164(tt.input, tt.region)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeE164(%q, %q) ok = %v, want %v", tt.input, tt.region, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeE164(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}
