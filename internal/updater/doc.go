// Package updater checks GitHub Releases (or a configured mirror) for newer
// versions of the swiftinit binary. A daily-cached version check powers the
// startup banner; the update command compares versions and reports where to
// download the release, it does not replace the running executable.
package updater
