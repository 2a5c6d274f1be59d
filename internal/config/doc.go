// Package config provides configuration management for the checktree CLI.
//
// # Configuration File
//
// The file is named config.yaml and is searched in the current directory
// and then in the XDG config directory (~/.config/checktree on Linux):
//
//	version: 1
//	format: text   # text, json, yaml or toml
//	tree: root     # registered tree evaluated by "checktree check"
//	detail: false  # add a per-node listing to text reports
//
// Every key can be overridden with a CHECKTREE_ environment variable, for
// example CHECKTREE_FORMAT=json. Command-line flags take precedence over
// both.
//
// # Validation
//
// [Validate] is itself a check tree and returns a *checktree.CheckInfo
// describing every invalid field:
//
//	if info := config.Validate(cfg); info != nil {
//		fmt.Println(info.Message)
//	}
package config
