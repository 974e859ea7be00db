// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the client side of the assistant
// conversation protocol.
//
// A Session owns a server-visible identifier, an append-only message
// history, and a small send state machine (Idle -> Sending -> Idle).
// Two independent session kinds exist: the workbench-wide assistant and
// the per-application assistant on a detail view. They never share
// identifiers or history; a detail surface mints a fresh session whenever
// its bound application changes.
//
// Failures here are deliberately soft: a failed send is absorbed into the
// message list as a fixed apology from the assistant rather than raised
// as a UI error.
package session
