package main

import (
	"flag"
	"testing"

	"github.com/urfave/cli"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("upload", flag.ContinueOnError)
	set.String("name", "", "")
	set.String("group", "", "")
	set.Int("cid-version", -1, "")
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestUploadOptions(t *testing.T) {
	opts := uploadOptions(newContext(t, "--group", "g1", "--cid-version", "1"), "cat.png")
	if opts.GroupID != "g1" {
		t.Fatalf("unexpected group %q", opts.GroupID)
	}
	if opts.CIDVersion == nil || *opts.CIDVersion != 1 {
		t.Fatalf("unexpected cid version %v", opts.CIDVersion)
	}
	if opts.Metadata == nil || opts.Metadata.Name != "cat.png" {
		t.Fatalf("expected default name, got %+v", opts.Metadata)
	}

	opts = uploadOptions(newContext(t, "--name", "renamed"), "cat.png")
	if opts.Metadata.Name != "renamed" {
		t.Fatalf("expected flag name to win, got %q", opts.Metadata.Name)
	}
	if opts.CIDVersion != nil {
		t.Fatal("cid version should be left to the API")
	}

	if opts = uploadOptions(newContext(t), ""); opts.Metadata != nil {
		t.Fatalf("expected no metadata, got %+v", opts.Metadata)
	}
}
