// Package profile resolves keys against a host-scoped TOML profile.
//
// # File Format
//
// Top-level tables are host names. Each host may hold a mappings table:
//
//	[localhost.mappings]
//	editor = "vi"
//
//	[workstation.mappings]
//	editor = "emacs"
//
// The localhost section supplies fallback mappings for every other host.
//
// # Usage
//
//	src := &profile.Source{Path: "/custom/path/my.toml"}
//	p, err := src.Load("workstation")
//	editor, err := p.GetString("editor")
//
// Without Path, the file is read from funixtools/my.toml inside the user
// configuration directory.
//
// # Lookup Order
//
//  1. mappings of the queried host
//  2. mappings of localhost
//
// When the queried host is localhost itself there is a single tier: its
// section is consumed as the current tier and nothing is left for the
// fallback.
package profile
