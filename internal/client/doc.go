// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows and client services into a single process
// lifecycle with a re-entrant login loop.
package client
