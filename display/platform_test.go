package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatformTokens(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		check func(t *testing.T, p Platform)
	}{
		{
			name:  "android chrome",
			ident: "mozilla/5.0 (linux; android 13; pixel 7) chrome/120.0 mobile safari",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.Android)
				assert.True(t, p.Chrome)
				assert.True(t, p.Linux, "android idents carry the linux token too")
				assert.False(t, p.IOS)
				assert.False(t, p.SSR)
			},
		},
		{
			name:  "iphone",
			ident: "mozilla/5.0 (iphone; cpu iphone os 17_0 like mac os x)",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.IOS)
				assert.True(t, p.Mac, "ios idents mention mac os")
				assert.False(t, p.Android)
			},
		},
		{
			name:  "ipad",
			ident: "something ipad something",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.IOS)
			},
		},
		{
			name:  "windows is not mutually exclusive with chrome",
			ident: "mozilla/5.0 (windows nt 10.0; win64) chrome/120.0 edge/120.0",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.Win)
				assert.True(t, p.Chrome)
				assert.True(t, p.Edge)
			},
		},
		{
			name:  "electron shell",
			ident: "mozilla/5.0 electron/28.0 chrome/120.0",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.Electron)
				assert.True(t, p.Chrome)
			},
		},
		{
			name:  "terminal ident",
			ident: "linux tmux-256color",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.Linux)
				assert.False(t, p.Win)
				assert.False(t, p.SSR)
			},
		},
		{
			name:  "ssr sentinel",
			ident: "ssr",
			check: func(t *testing.T, p Platform) {
				assert.True(t, p.SSR)
				assert.False(t, p.Linux)
			},
		},
		{
			name:  "matches are case-sensitive",
			ident: "Android CHROME",
			check: func(t *testing.T, p Platform) {
				assert.False(t, p.Android)
				assert.False(t, p.Chrome)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParsePlatform(tt.ident, false))
		})
	}
}

func TestParsePlatformTouchFromProbe(t *testing.T) {
	p := ParsePlatform("linux xterm", true)
	assert.True(t, p.Touch)

	p = ParsePlatform("linux touchscreen", false)
	assert.False(t, p.Touch, "touch comes from the capability probe, not the ident")
}
