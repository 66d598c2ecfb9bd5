// SPDX-License-Identifier: EPL-2.0

// Package cli holds the lipgloss styles and printers of the audtrim command.
package cli
