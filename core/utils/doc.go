// Package utils provides common helpers that don't fit into a feature package,
// currently strict conversion of decoded JSON values.
package utils
