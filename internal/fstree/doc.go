// Package fstree builds size-annotated trees of filesystem entries and
// renders them as threshold-filtered reports.
//
// A scan walks a directory recursively, recording every entry's size and
// degrading unreadable entries to zero-size placeholders instead of
// failing. Rendering sorts each level by size and collapses children that
// fall below a proportional significance threshold into a single
// statistical "others" line.
package fstree
