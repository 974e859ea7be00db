// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for lendbench.
//
// Configuration sources, in order of precedence:
//   - LENDBENCH_* environment variables
//   - ~/.lendbench/config.toml
//   - Built-in defaults
//
// A .env file in the working directory is loaded first (best effort) so
// that deployments can supply the backend URL the same way the hosted
// workbench does. The resolved config is read once at startup; the
// backend base URL is injected into the API client at construction and
// never read from ambient state afterward.
package config
