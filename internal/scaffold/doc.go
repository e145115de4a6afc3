// Package scaffold generates new Swift package skeletons from embedded
// templates. It powers the "swiftinit init" command, producing the manifest,
// ignore file, source tree, module map, and test tree appropriate for the
// chosen mode with create-if-absent semantics: re-running against a
// partially initialized directory fills in only what is missing, and an
// existing manifest aborts the whole run.
package scaffold
