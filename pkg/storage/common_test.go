package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pinata-sdk/pinata-go/internal/testutil"
	"github.com/pinata-sdk/pinata-go/pkg/config"
	"github.com/pinata-sdk/pinata-go/pkg/gateway"
)

const testCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func TestReadURLPrefersIPFS(t *testing.T) {
	var gotPath string
	s := &Client{
		Gateway: "https://gw.invalid",
		ipfsFetcher: ipfsFetcherFunc(func(_ context.Context, p string) ([]byte, error) {
			gotPath = p
			return []byte("from-ipfs"), nil
		}),
		httpFetcher: httpFetcherFunc(func(context.Context, string) ([]byte, error) {
			t.Fatal("gateway must not be used when ipfs succeeds")
			return nil, nil
		}),
	}

	data, err := s.ReadURL(context.Background(), "ipfs://"+testCID+"/dir/file.txt?x=1")
	if err != nil {
		t.Fatalf("ReadURL error: %v", err)
	}
	if string(data) != "from-ipfs" {
		t.Fatalf("unexpected data %q", data)
	}
	if gotPath != "/ipfs/"+testCID+"/dir/file.txt" {
		t.Fatalf("unexpected ipfs path %q", gotPath)
	}
}

func TestReadURLFallsBackToGateway(t *testing.T) {
	var gotURL string
	s := &Client{
		Gateway: "https://mygateway.mypinata.cloud",
		ipfsFetcher: ipfsFetcherFunc(func(context.Context, string) ([]byte, error) {
			return nil, fmt.Errorf("node offline")
		}),
		httpFetcher: httpFetcherFunc(func(_ context.Context, url string) ([]byte, error) {
			gotURL = url
			return []byte("from-gateway"), nil
		}),
	}

	data, err := s.ReadURL(context.Background(), "https://"+testCID+".ipfs.dweb.link/a.json")
	if err != nil {
		t.Fatalf("ReadURL error: %v", err)
	}
	if string(data) != "from-gateway" {
		t.Fatalf("unexpected data %q", data)
	}
	if gotURL != "https://mygateway.mypinata.cloud/ipfs/"+testCID+"/a.json" {
		t.Fatalf("unexpected gateway URL %q", gotURL)
	}
}

func TestReadURLPlainHTTP(t *testing.T) {
	srv := testutil.StartHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	}))

	s := NewStorage(&config.Config{Gateway: "gw.example"})
	data, err := s.ReadURL(context.Background(), srv.URL+"/file.txt")
	if err != nil {
		t.Fatalf("ReadURL error: %v", err)
	}
	if string(data) != "plain" {
		t.Fatalf("unexpected data %q", data)
	}
	if s.HttpApi != nil {
		t.Fatal("ipfs client should be disabled without IpfsURL")
	}
}

func TestReadURLRejectsUnsupportedSource(t *testing.T) {
	s := &Client{}
	if _, err := s.ReadURL(context.Background(), "ipfs://"+testCID); err == nil {
		t.Fatal("expected error for ipfs source without gateway or node")
	}
	if _, err := s.ReadURL(context.Background(), "ftp://example.com/file"); err == nil {
		t.Fatal("expected error for non-http source")
	}
}

func TestGetFileCtx_Status(t *testing.T) {
	srv := testutil.StartHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := GetFileCtx(context.Background(), http.DefaultClient, srv.URL)
	if err == nil || !strings.Contains(err.Error(), "problem fetching URL") {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestGetFileCtx_Timeout(t *testing.T) {
	srv := testutil.StartHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))

	start := time.Now()
	_, err := newHTTPFetcher(50*time.Millisecond).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if dur := time.Since(start); dur > 500*time.Millisecond {
		t.Fatalf("took too long: %v", dur)
	}
}

func TestIPFSPathOf(t *testing.T) {
	tests := map[string]string{
		"ipfs://" + testCID:                       "/ipfs/" + testCID,
		"ipfs://" + testCID + "/":                 "/ipfs/" + testCID,
		"https://ipfs.io/ipfs/" + testCID + "/a#b": "/ipfs/" + testCID + "/a",
	}
	for in, want := range tests {
		found := gateway.ContainsCID(in).(gateway.Found)
		if got := ipfsPathOf(found); got != want {
			t.Fatalf("ipfsPathOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIPFSFetcherRejectsBadCID(t *testing.T) {
	api, err := NewIPFSClient("http://127.0.0.1:5001", config.Timeouts{})
	if err != nil {
		t.Fatalf("NewIPFSClient: %v", err)
	}
	f := newIPFSFetcher(api)
	if _, err := f.Fetch(context.Background(), "/ipfs/not-a-cid"); err == nil {
		t.Fatal("expected CID parse error")
	}
	if _, err := newIPFSFetcher(nil).Fetch(context.Background(), "/ipfs/"+testCID); err == nil {
		t.Fatal("expected error without client")
	}
}

type ipfsFetcherFunc func(context.Context, string) ([]byte, error)

func (f ipfsFetcherFunc) Fetch(ctx context.Context, p string) ([]byte, error) {
	return f(ctx, p)
}

type httpFetcherFunc func(context.Context, string) ([]byte, error)

func (f httpFetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

