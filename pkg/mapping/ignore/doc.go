// Package ignore implements path2map's exclusion stages: built-in default
// patterns, .p2mignore glob rules with negation, and command line regular
// expressions. Stages are applied in that order and the first stage to exclude
// an entry wins.
package ignore
