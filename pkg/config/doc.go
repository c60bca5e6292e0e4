// Package config provides configuration management for the Pinata SDK.
//
// This package defines the Config structure that controls SDK behavior:
// credentials, the API endpoint, the default gateway used for URL
// conversion, custom headers and timeouts.
//
// # Basic Configuration
//
// The minimum required configuration is a JWT:
//
//	cfg := &config.Config{
//		JWT:     os.Getenv("PINATA_JWT"),
//		Gateway: "example-gateway.mypinata.cloud",
//	}
//
// # Endpoints
//
// Requests go to https://api.pinata.cloud unless EndpointURL is set. Point it
// at an httptest server or a proxy for testing:
//
//	cfg.EndpointURL = "http://localhost:8080"
//
// When IpfsURL names a Kubo RPC endpoint, URL uploads whose source carries a
// CID are read from that node instead of a public gateway:
//
//	cfg.IpfsURL = "http://localhost:5001"
//
// # Headers
//
// Every request carries "Authorization: Bearer <JWT>" and a "Source" header
// naming the SDK operation. CustomHeaders are applied afterwards and may
// override either.
//
// # Timeouts
//
//	cfg.Timeouts = config.Timeouts{
//		Dial:    10 * time.Second, // Kubo RPC connect
//		Request: 60 * time.Second, // single API call
//		Fetch:   2 * time.Minute,  // source download for URL uploads
//	}
//
// Zero values are replaced with defaults via WithDefaults().
//
// # Loading
//
// Load reads an optional YAML/JSON file and PINATA_* environment variables
// (PINATA_JWT, PINATA_GATEWAY, PINATA_ENDPOINT_URL, PINATA_TIMEOUTS_REQUEST,
// ...). A .env file in the working directory is honoured:
//
//	cfg, err := config.Load("pinata.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing to
// sdk.New(). The Config is read-only during SDK operations.
package config
