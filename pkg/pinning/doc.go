// Package pinning uploads content to the pinning service and removes pins.
//
// Uploads come in three shapes: a named file stream (UploadFile), an
// arbitrary JSON-serializable value (UploadJSON) and the content behind a
// URL (UploadURL). URL sources carrying a CID are read from IPFS through
// the storage package before being uploaded as a file.
//
// Unpin processes a batch sequentially and never fails on a single item;
// the pace between requests is a backoff.BackOff so callers can swap the
// default constant delay for their own policy.
package pinning
