package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestParseClientInfo(t *testing.T) {
	tests := []struct {
		name       string
		userAgent  string
		deviceType string
		browser    string
		os         string
	}{
		{
			name:       "windows chrome desktop",
			userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			deviceType: "desktop",
			browser:    "Chrome",
			os:         "Windows",
		},
		{
			name:       "iphone safari mobile",
			userAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			deviceType: "mobile",
			browser:    "Safari",
			os:         "iOS",
		},
		{
			name:       "ipad tablet",
			userAgent:  "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Safari/604.1",
			deviceType: "tablet",
			browser:    "Safari",
			os:         "iOS",
		},
		{
			name:       "android firefox mobile",
			userAgent:  "Mozilla/5.0 (Android 14; Mobile; rv:120.0) Gecko/120.0 Firefox/120.0",
			deviceType: "mobile",
			browser:    "Firefox",
			os:         "Android",
		},
		{
			name:       "edge on windows",
			userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 Edg/120.0",
			deviceType: "desktop",
			browser:    "Edge",
			os:         "Windows",
		},
		{
			name:       "empty user agent",
			userAgent:  "",
			deviceType: "desktop",
			browser:    "Other",
			os:         "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(map[string]string{"User-Agent": tt.userAgent})
			info := ParseClientInfo(c)
			if info.DeviceType != tt.deviceType {
				t.Errorf("device = %q, want %q", info.DeviceType, tt.deviceType)
			}
			if info.Browser != tt.browser {
				t.Errorf("browser = %q, want %q", info.Browser, tt.browser)
			}
			if info.OS != tt.os {
				t.Errorf("os = %q, want %q", info.OS, tt.os)
			}
			if info.UserAgent != tt.userAgent {
				t.Errorf("user agent not carried through")
			}
		})
	}
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := testContext(map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
	if ip := GetClientIP(c); ip != "203.0.113.7" {
		t.Errorf("ip = %q, want first forwarded hop", ip)
	}

	c = testContext(map[string]string{"X-Forwarded-For": "not-an-ip", "X-Real-IP": "198.51.100.2"})
	if ip := GetClientIP(c); ip != "198.51.100.2" {
		t.Errorf("ip = %q, want X-Real-IP fallback", ip)
	}
}
