// Package config handles loading and validation of clx configuration.
//
// Configuration is read from ~/.config/clx/config.toml with environment
// variable overrides for the wrapped binaries.
//
// # Configuration Sources (highest priority first)
//
//   - CLX_CL_BIN env var: the cl binary to invoke
//   - CLX_DIFF_TOOL env var: the interactive diff tool
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - cl_bin / q_bin: names or paths of the wrapped CLIs
//   - diff_tool: interactive diff tool for `clx diff` (default vimdiff)
//   - info_batch_size: bundle specs per `cl info` invocation
//   - history_limit: max entries kept in the rerun history
//
// # Aliases
//
// The [aliases] table maps short server names to addresses, mirroring the
// alias map of the CodaLab config. A bundle spec written as main::0xabc
// expands its prefix through this table before being handed to cl:
//
//	[aliases]
//	main = "https://codalab.org/bundleservice"
//	localhost = "http://localhost:2800"
package config
