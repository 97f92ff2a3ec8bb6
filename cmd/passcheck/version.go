package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/spf13/cobra"
)

var (
	versionOnce   sync.Once
	cachedVersion string
)

// appVersion returns the best-effort semantic version for the passcheck
// binary. The lookup order is:
//  1. Explicit PASSCHECK_VERSION environment variable (custom builds)
//  2. Go build information when available (e.g. go install passcheck@vX)
//  3. A development fallback string
func appVersion() string {
	versionOnce.Do(func() {
		cachedVersion = detectVersion()
	})
	return cachedVersion
}

func detectVersion() string {
	if v := strings.TrimSpace(os.Getenv("PASSCHECK_VERSION")); v != "" {
		return v
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return fmt.Sprintf("dev-%s", setting.Value)
			}
		}
	}

	return "development"
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passcheck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "passcheck %s\n", appVersion())
			fmt.Fprintln(cmd.OutOrStdout(), gray("rule-based password strength checker"))
		},
	}
}
