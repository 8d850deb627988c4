package domain

import "path/filepath"

// File and directory names used by the application.
const (
	AppDirName     = ".talia"      // State directory under the user home
	StoreFileName  = "tasks.json"  // Task database
	LogFileName    = "talia.log"   // Diagnostic log
	ConfigFileName = "config.toml" // User configuration
)

// AppDir returns the talia state directory under the given home directory.
func AppDir(home string) string {
	return filepath.Join(home, AppDirName)
}

// StorePath returns the default task file path under the given home directory.
func StorePath(home string) string {
	return filepath.Join(AppDir(home), StoreFileName)
}

// LogPath returns the diagnostic log path under the given home directory.
func LogPath(home string) string {
	return filepath.Join(AppDir(home), "logs", LogFileName)
}
