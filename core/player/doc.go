// Package player plays MP3 files through an external binary (mpg123, mpg321 or
// ffplay, in that order, or player.command when configured).
package player
