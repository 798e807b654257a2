// Package file stores documents on the local file system.
//
// Writes go to a temporary file in the target directory which is then
// renamed over the target, so readers never observe a partial document.
// Locks are advisory and held on a sibling "<path>.lock" file.
package file
