// Package cmdargs tokenizes slash-command argument lists into validated
// option values. Each command declares the options it accepts; parsing
// validates every value in place and fails on the first violation, so a
// handler only ever sees a fully valid bag of arguments.
package cmdargs
