// Package rules provides the built-in style rules of stylecheck.
//
// Every rule works on lexical evidence only: the file text, its lines and
// the classified token stream. Rules are declared as Def values, one per
// file, and assembled in a fixed order by Catalog:
//
//   - whitespace: line_length, leading_whitespace, trailing_whitespace,
//     return_arrow_whitespace, trailing_newline, colon
//   - idioms: force_cast, todo, control_statement
//   - naming: type_name, variable_name
//   - size and structure: file_length, type_body_length,
//     function_body_length, nesting
//
// Any rule honors the per-line opt-out comment "// $-<rule_id>".
package rules
