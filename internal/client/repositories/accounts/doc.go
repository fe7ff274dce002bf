// Package accounts persists account records in a plain text file, one
// serialized account per line.
//
// The file is always read whole and written whole: Save truncates the file
// and rewrites every record. No locking is applied, so two processes sharing
// a file will overwrite each other (last writer wins).
package accounts
