package display

import "strings"

// Platform is a snapshot of environment and capability flags, derived once
// from the environment's identification string when a Display is built.
// Token matches are independent: an ident can set both Win and Chrome.
type Platform struct {
	Android  bool `json:"android"`
	IOS      bool `json:"ios"`
	Cordova  bool `json:"cordova"`
	Electron bool `json:"electron"`
	Chrome   bool `json:"chrome"`
	Edge     bool `json:"edge"`
	Firefox  bool `json:"firefox"`
	Opera    bool `json:"opera"`
	Win      bool `json:"win"`
	Mac      bool `json:"mac"`
	Linux    bool `json:"linux"`
	Touch    bool `json:"touch"`
	SSR      bool `json:"ssr"`
}

// ParsePlatform derives a Platform from an identification string. Matches
// are case-sensitive substring tests, so callers should pass the string as
// the environment reports it. The touch flag comes from a capability probe,
// not from the ident.
func ParsePlatform(ident string, touch bool) Platform {
	return Platform{
		Android:  strings.Contains(ident, "android"),
		IOS:      containsAny(ident, "iphone", "ipad", "ipod"),
		Cordova:  strings.Contains(ident, "cordova"),
		Electron: strings.Contains(ident, "electron"),
		Chrome:   strings.Contains(ident, "chrome"),
		Edge:     strings.Contains(ident, "edge"),
		Firefox:  strings.Contains(ident, "firefox"),
		Opera:    strings.Contains(ident, "opera"),
		Win:      strings.Contains(ident, "win"),
		Mac:      strings.Contains(ident, "mac"),
		Linux:    strings.Contains(ident, "linux"),
		Touch:    touch,
		SSR:      strings.Contains(ident, "ssr"),
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
