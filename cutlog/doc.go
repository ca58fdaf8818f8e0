// Package cutlog implements C8 (spec.md §6): a timestamped dual sink
// mirrored to stdout and a truncated log file, "[YYYY-MM-DD HH:MM:SS.mmm]"
// prefixed at the start of every line. Construction follows the pack's
// functional-options idiom (New(...Option)); logging itself stays on the
// standard library, matching every complete repo in the example pack.
package cutlog
