// Package paths resolves where the checktree CLI looks for its
// configuration. It wraps github.com/adrg/xdg so the directory follows the
// XDG Base Directory conventions on every platform.
package paths
