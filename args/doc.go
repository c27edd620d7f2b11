/*
Package args classifies raw process arguments into typed tokens and tracks
which of them have been consumed during a parse.

Classification happens once, up front:

  - "-x" is a short flag, "-xVALUE" a short flag with an attached value.
  - "--name" is a long flag, "--name=VALUE" a long flag with an attached value.
  - "--" by itself is a separator; everything after it is a plain value even
    when it starts with a dash.
  - everything else is a Word, a plain value.

A [Word] keeps both the raw bytes and a validated UTF-8 view, so parsers can
choose between strict and lenient string handling.

[Args] is the consumption state. It is passed by value and every operation
returns a fresh state with the claimed tokens removed, which makes trying an
alternative and rolling back free: keep the old value, discard the new one.
All scans are strictly left to right and first-match wins.
*/
package args
