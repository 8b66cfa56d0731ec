// Package version detects the declared asciicast format version.
package version

import (
	"regexp"
	"strconv"
)

// Default is assumed when a document does not declare a version.
const Default = 2

var versionRegex = regexp.MustCompile(`"version"\s*:\s*([0-9]+)`)

// Detect returns the first declared "version" in text, or Default when
// there is none or it does not fit an int.
func Detect(text string) int {
	m := versionRegex.FindStringSubmatch(text)
	if m == nil {
		return Default
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return Default
	}
	return v
}
