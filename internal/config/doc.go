// Package config loads the kanjiparse run configuration.
//
// Configuration is layered: built-in defaults, then an optional YAML file
// decoded strictly (unknown keys are errors), then command-line overrides
// applied by the caller. The result is checked against an embedded CUE
// schema, which closes the column map to the known field names and keeps
// column indices non-negative.
//
// Example file:
//
//	workbook:
//	  path: Kanji_Story_database_R002.xlsm
//	  sheet: Story_all
//	  columns:
//	    display_character: 12
//	dictionary:
//	  path: kanjidic2.xml.gz
//	output:
//	  dir: output_csv
//	  database: output_csv/kanji.db
package config
