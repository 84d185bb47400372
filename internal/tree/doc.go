// Package tree renders a directory hierarchy in the layout of the Unix tree utility.
//
// It walks a directory depth-first on a single goroutine, skipping hidden entries,
// orders each level by a normalized alphanumeric key, and keeps a running count
// of the directories and files it printed.
package tree
