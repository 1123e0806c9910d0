// Package jsonl reads and writes JSON Lines DataFrames. The parser uses
// https://github.com/tidwall/gjson to process data, and supports column names
// formatted as gjson paths.
package jsonl
