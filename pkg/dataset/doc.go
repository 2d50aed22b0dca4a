/*
Package dataset makes corpus files available in the working directory.

A Provisioner checks each dataset by its local path and downloads only the missing ones
through a ports.Fetcher. Downloads land in a temporary file next to the target and are
renamed into place once complete, so an interrupted transfer never satisfies a later
presence check. There is no retry and no checksum verification.
*/
package dataset
