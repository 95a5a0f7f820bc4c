// Package lsp implements a Language Server Protocol server for JSON,
// JSONC, and JSON5 documents.
//
// The server provides:
//   - Real-time diagnostics (one syntax error per document — this front end
//     does not recover from parse errors, so there is never more than one)
//   - Hover showing the kind and byte span of the value under the cursor
//   - Formatting via the printer package, canonical output only
//
// The server communicates over JSON-RPC 2.0 via stdio and implements LSP
// 3.16. It is a thin consumer of the parser/printer/perr packages: no
// parallel implementation of parsing or printing lives here.
package lsp
