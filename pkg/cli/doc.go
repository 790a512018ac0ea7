// Package cli implements the command-line interface for the recipe-helper tool.
//
// # Overview
//
// recipe-helper prices recipes from flat files: a price database listing what
// each ingredient costs in the quantity it is sold, and one directory per
// recipe holding its ingredients and, optionally, its serving forms.
//
// # Commands
//
// cost - Price recipes:
//
//	recipe-helper cost [recipe...] [--output FILE] [--format text|json|yaml|table]
//
// Builds each recipe and reports every ingredient price, the total and the
// price per serving form. Without arguments the recipes named in the config
// file are priced, and without those every recipe under the recipes directory.
//
// price - Price one ingredient quantity:
//
//	recipe-helper price flour 500 g
//
// prices - List the price database with unit prices:
//
//	recipe-helper prices --format table
//
// combine - Add two quantities of one ingredient:
//
//	recipe-helper combine flour 1 lb 250 g
//
// units - List known units and their aliases:
//
//	recipe-helper units
//
// # Global Flags
//
//	--config, -c         Config file (default: ./recipe-helper.yaml when present)
//	--prices, -p         Price database file
//	--recipes-dir, -r    Directory of recipes
//	--concurrency        Recipes built in parallel
//	--reject-duplicates  Fail on duplicate price entries instead of keeping the last
//	--metrics-file       Write Prometheus metrics to a file on exit
//	--log-level          Logging verbosity (debug, info, warn, error)
//
// # Environment Variables
//
//	LOG_LEVEL                        Logging verbosity
//	RECIPE_HELPER_CONFIG             Config file
//	RECIPE_HELPER_PRICES             Price database file
//	RECIPE_HELPER_RECIPES_DIR        Recipes directory
//	RECIPE_HELPER_CONCURRENCY        Build concurrency
//	RECIPE_HELPER_REJECT_DUPLICATES  Duplicate price policy
//	RECIPE_HELPER_METRICS_FILE       Metrics output file
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown ingredient, bad data file)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/alechouse97/recipe-helper/pkg/cli.version=1.0.0'"
package cli
