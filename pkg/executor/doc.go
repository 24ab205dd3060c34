// Package executor carries out a list of behaviors.
//
// In dry-run mode every behavior is previewed and nothing is executed.
// Otherwise behaviors run strictly in order and the first failure stops the
// run; behaviors that already succeeded are not rolled back.
package executor
