// Package report renders analysis tables as fixed-width text and ASCII plots.
package report
