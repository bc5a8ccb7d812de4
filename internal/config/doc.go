// Package config loads reel's optional TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (-config), use it
//  2. Otherwise, use ~/.config/reel/config.toml
//  3. If the file doesn't exist, use Defaults()
//  4. If the file exists but fields are missing, empty or out of range, use defaults
//
// # Fields
//
//	log_file = "~/.local/state/reel/reel.log"  # empty disables logging
//	log_level = "info"                         # debug, info, warn, error
//	log_max_size_mb = 10                       # rotate after this size
//	log_max_backups = 3                        # rotated files to keep
//
// A leading ~ in log_file is expanded to the user's home directory.
//
// Nothing here configures the catalog or favorites: the catalog is compiled
// in and favorites live only for the lifetime of the process.
//
// # Error Handling
//
// A missing file is not an error. Open, read and TOML parse failures are
// returned wrapped ("open config: ...", "read config: ...", "parse config:
// ...") and abort startup.
package config
