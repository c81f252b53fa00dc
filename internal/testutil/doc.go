// Package testutil provides fixtures and deterministic helpers shared by
// package tests: a sample story workbook, a sample KANJIDIC2 document, a
// fixed clock, sequential run ids and golden-file assertions.
//
// Nothing in this package is imported by production code.
package testutil
