// Package dump writes diagnostic files for the dump! macro: the token
// tree of its arguments, the declaration parsed from them, and the codec
// that would be generated. It never produces code at the call site.
package dump
