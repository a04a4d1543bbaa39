package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/buildinfo"
)

const defaultModulePath = "github.com/nbroch/skema"

type versionInfo struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

// Swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show skm version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Printf("skm %s\n", info.Version)
		fmt.Printf("module: %s\n", info.ModulePath)
		if info.Commit != "" {
			fmt.Printf("commit: %s\n", info.Commit)
		}
		if info.CommitTime != "" {
			fmt.Printf("commit_time: %s\n", info.CommitTime)
		}
		fmt.Printf("go: %s\n", info.GoVersion)
		fmt.Printf("platform: %s/%s\n", info.GOOS, info.GOARCH)
		fmt.Printf("modified: %t\n", info.Modified)

		return nil
	},
}

// currentVersionInfo merges debug.ReadBuildInfo with the ldflags-stamped
// buildinfo package. VCS stamps win; ldflags fill whatever the module
// build left blank.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}

		if bi.Main.Path != "" {
			info.ModulePath = bi.Main.Path
		}
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		if v := settings["GOOS"]; v != "" {
			info.GOOS = v
		}
		if v := settings["GOARCH"]; v != "" {
			info.GOARCH = v
		}
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if info.Version == "devel" && buildinfo.Version != "" {
		info.Version = buildinfo.Version
	}
	if info.Commit == "" {
		info.Commit = buildinfo.Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = buildinfo.Date
	}

	return info
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
