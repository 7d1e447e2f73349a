// Package audio manages the eight slot files on disk.
//
// Check reports which configured files are missing or unconfigured. Service.Sync
// fetches the sound pack from an S3/MinIO bucket: each slot's object key is the
// storage prefix followed by the base name of its configured path, so
// audio/sound3.mp3 syncs from <bucket>/audio/sound3.mp3 by default.
//
// The API server never calls into this package; it backs `ttrpg-pi audio`.
package audio
