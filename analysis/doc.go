// Package analysis turns one recording into its comparison artifacts: four
// PNG figures and a Record of summary statistics, and writes Records as a
// CSV table.
package analysis
