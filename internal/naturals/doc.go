// Package naturals implements the interactive number exercise: it prompts for
// one integer, reports whether it is even or odd and, for positive values,
// prints the natural numbers from 1 up to it.
//
// A run moves through a fixed sequence of states:
//
//	AwaitInput -> Classify -> PrintSequence -> Done
//	AwaitInput -> FailedInput (malformed input)
//
// Only the stdin read blocks. Output is buffered and flushed before that read
// and when the run ends.
package naturals
