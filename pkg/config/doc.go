// Package config loads consolecss settings. Sources are layered, later
// ones winning: the embedded defaults, the user file under the XDG config
// directory, a .consolecss.toml in the working directory, an explicit file
// and finally CONSOLECSS_ environment variables.
package config
