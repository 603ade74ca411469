package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"upstream": map[string]any{
			"apiBaseUrl":      "",
			"imageBaseUrl":    "",
			"frontendBaseUrl": "",
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
		"status": map[string]any{
			"refreshInterval": "30s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "UPSTREAM_APIBASEURL", want: "upstream.apiBaseUrl"},
		{envKey: "UPSTREAM_FRONTENDBASEURL", want: "upstream.frontendBaseUrl"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "STATUS_REFRESHINTERVAL", want: "status.refreshInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
