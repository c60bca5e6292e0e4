// Package sdk is the entry point of the pinning API client. It validates the
// configuration, builds one shared transport and wires the per-area clients
// (uploads, groups, keys, analytics, usage) together with the gateway
// resolver.
//
// # Quick Start
//
//	cfg := &config.Config{
//		JWT:     os.Getenv("PINATA_JWT"),
//		Gateway: "example-gateway.mypinata.cloud",
//	}
//	client, err := sdk.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pin, err := client.Upload.UploadJSON(ctx, map[string]string{"hello": "world"}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	url, _ := client.Gateways.Convert("ipfs://" + pin.IpfsHash)
//
// # Errors
//
// Every operation returns one of the apierr types: *ValidationError before a
// request is sent, *AuthenticationError for 401/403 responses,
// *NetworkError for other non-2xx responses and *PinataError for anything
// else. Use errors.As to tell them apart.
//
// # Logging
//
// The package installs a console zap logger at info level as the global
// logger. Config.Debug raises it to debug; zap.ReplaceGlobals swaps it out.
//
// # Retries and pacing
//
// API calls are not retried unless WithRetry is given. Batch unpin pauses
// Config.UnpinDelay between requests; WithUnpinPolicy replaces that pacing
// with any backoff.BackOff.
package sdk
