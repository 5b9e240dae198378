// Package points scores each planet of a chart from a static points table.
//
// Every planet receives a score: the table entry for its (planet, sign)
// pair when present, otherwise the table default. A planet without a sign
// also receives the default. Missing data is never an error.
package points
