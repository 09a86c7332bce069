// Package config loads luhnkit configuration from local and global YAML files
// and LUHNKIT_* environment variables with precedence rules. It is internal;
// CLI code maps flags, environment and files into command options.
package config
