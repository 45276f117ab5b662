// Package config loads csvpeek settings from a YAML file and CSVPEEK_*
// environment variables.
//
// Precedence, lowest first: built-in defaults, the YAML file, the
// environment. Command line flags are applied on top by the caller.
//
// Environment variables:
//
//	CSVPEEK_CONFIG                  path to the YAML file
//	CSVPEEK_PREVIEW_LIMIT           rows shown (default 5)
//	CSVPEEK_PREVIEW_ALIGN           left or right, any case (default right)
//	CSVPEEK_PREVIEW_MISSING_TOKEN   text for missing cells (default NaN)
//	CSVPEEK_PREVIEW_MAX_COL_WIDTH   clip width for strings (default 0, no clipping)
//	CSVPEEK_PREVIEW_SHOW_INDEX      print a row index column
//	CSVPEEK_PARSE_DELIMITER         one character, or tab/comma/semicolon/pipe
//	CSVPEEK_PARSE_SNIFF             guess the delimiter
//	CSVPEEK_PARSE_NO_HEADER         first line is data
//	CSVPEEK_PARSE_KEEP_BLANK_LINES  read empty lines as rows
//	CSVPEEK_PARSE_MISSING_TOKENS    comma-separated missing value tokens
//	CSVPEEK_PARSE_SHEET             worksheet name for xlsx input
//	CSVPEEK_LOGGING_LEVEL           debug, info, warn or error (default warn)
//	CSVPEEK_LOGGING_FORMAT          text or json (default text)
package config
