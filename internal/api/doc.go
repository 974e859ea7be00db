// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the workbench backend API.
//
// The client wraps the six calls the workbench makes: list applications
// (with aggregate stats), fetch one application, update a review status,
// send a chat message, fetch chat history, and seed demo data. Every call
// is a single attempt; nothing here retries. The backend base URL is
// injected at construction so tests can point the client at a fake server.
package api
