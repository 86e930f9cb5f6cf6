// Package backup converts backup containers between their binary protobuf form and
// the JSON mirror.
//
// A container is a single serialized root message (Backup), gzip-compressed when the
// file name ends in .tachibk or .proto.gz. Compression is decided purely by file
// extension; content is never sniffed.
package backup
