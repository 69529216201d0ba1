// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the gift client.
//
// Two pages are routed by [RootModel]:
//
//   - create: message, theme and image form, remaining quota, the share
//     modal shown after a successful creation, and the local history of
//     created gifts;
//   - reveal: the scratch card of a fetched gift, scratched with the mouse
//     through [scratch.Surface].
//
// Requests run inside tea.Cmd goroutines; the scratch surface is updated
// synchronously in Update.
package tui
