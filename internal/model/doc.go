// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for loan applications,
// review workflow statuses, aggregate stats, and chat messages.
//
// Everything here mirrors the wire shapes of the workbench backend API.
// The client never computes with financial figures; loan amounts arrive
// pre-formatted for display. The only field the client ever mutates
// (through the API, never locally) is an application's review status.
//
// Status fields are closed enumerations rather than free-form strings so
// that invalid values are rejected at the boundary instead of silently
// rendering unstyled.
package model
