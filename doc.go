// Package tabular contains the core components of Tabular, a small in-memory
// library for row-oriented tabular data. This root package defines the DataFrame
// and Row types along with their filtering, transformation and reduction
// operations, and is an excellent overview of Tabular's key concepts.
package tabular
