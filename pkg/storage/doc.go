// Package storage provides content retrieval for URL uploads.
//
// A URL upload first downloads its source and then pins the bytes as a file.
// Sources that carry a CID do not need to go through the public gateway named
// in the URL:
//
//   - when Config.IpfsURL names a Kubo node, the content is read with
//     `ipfs cat /ipfs/<cid>/<path>` over the node's HTTP RPC API;
//   - otherwise, or when the node fails, the URL is rewritten to the
//     configured gateway (see package gateway) and downloaded over HTTP.
//
// Any other source must be an http(s) URL and is downloaded as is.
//
//	s := storage.NewStorage(&config.Config{
//		Gateway: "example-gateway.mypinata.cloud",
//		IpfsURL: "http://localhost:5001",
//	})
//	data, err := s.ReadURL(ctx, "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
//
// # CID Formats
//
// CIDv0 (legacy):
//   - Starts with "Qm"
//   - 46 characters
//   - Example: QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG
//
// CIDv1 (modern):
//   - Multibase prefixed, "bafy..." / "bafk..." in base32
//   - Example: bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi
//
// # Error Handling
//
// Non-2xx gateway or source responses fail with "problem fetching URL".
// Kubo failures are logged and trigger the gateway fallback.
package storage
