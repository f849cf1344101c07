// Package buildinfo reports version metadata injected at link time.
package buildinfo

import "fmt"

// Set via -ldflags "-X ...".
var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func PrintBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(BuildVersion))
	fmt.Printf("Build date: %s\n", orNA(BuildDate))
	fmt.Printf("Build commit: %s\n", orNA(BuildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
