// Package diag defines the diagnostic model shared by the formatter phases.
//
// The core pipeline never fails: lexical oddities such as an unterminated
// string or block comment are closed implicitly. They are still worth telling
// the user about, so the lexer emits them through a Reporter as Info or
// Warning diagnostics.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; the driver owns one Bag per file.
package diag
