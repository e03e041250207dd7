// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the clinicboard
// dashboard.
//
// Configuration is loaded from a single YAML file specified by:
//   - CLINICBOARD_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There is no automatic file discovery. When neither is given, the
// built-in defaults apply (localhost server, 10 second poll and
// request timeouts); the only environment override honored is
// CLINICBOARD_API_URL, which the command applies on top of the
// loaded config.
package config
