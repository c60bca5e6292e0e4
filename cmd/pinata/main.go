package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pinata-sdk/pinata-go/pkg/config"
	"github.com/pinata-sdk/pinata-go/pkg/gateway"
	"github.com/pinata-sdk/pinata-go/pkg/model"
	"github.com/pinata-sdk/pinata-go/pkg/sdk"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// BuildVersion is set at link time.
var BuildVersion = "dev"

func main() {
	app := cli.NewApp()
	app.Name = "pinata"
	app.Usage = "pin content and resolve IPFS gateway URLs"
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config,c",
			Usage:  "config file (yaml, json or toml); PINATA_* variables override it",
			EnvVar: "PINATA_CONFIG",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "rewrite an IPFS URL onto a gateway",
			ArgsUsage: "<url>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "gateway,g", Usage: "gateway host or URL", EnvVar: "PINATA_GATEWAY"},
			},
			Action: convert,
		},
		{
			Name:      "contains",
			Usage:     "report whether the input carries a CID",
			ArgsUsage: "<input>",
			Action:    contains,
		},
		{
			Name:      "unpin",
			Usage:     "remove pins, one request per CID",
			ArgsUsage: "<cid>...",
			Action:    unpin,
		},
		{
			Name:   "keys",
			Usage:  "list API keys",
			Action: listKeys,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Usage: "filter by key name"},
				cli.IntFlag{Name: "offset", Usage: "skip the first N keys"},
			},
		},
		{
			Name:      "upload-json",
			Usage:     "pin the JSON document stored in a file",
			ArgsUsage: "<file>",
			Flags:     uploadFlags,
			Action:    uploadJSON,
		},
		{
			Name:      "upload-file",
			Usage:     "pin a file",
			ArgsUsage: "<file>",
			Flags:     uploadFlags,
			Action:    uploadFile,
		},
		{
			Name:   "pin-count",
			Usage:  "print the number of pins on the account",
			Action: pinCount,
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

var uploadFlags = []cli.Flag{
	cli.StringFlag{Name: "name", Usage: "metadata name"},
	cli.StringFlag{Name: "group", Usage: "group id"},
	cli.IntFlag{Name: "cid-version", Value: -1, Usage: "0 or 1; the API default when unset"},
}

func convert(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pinata convert <url>", 2)
	}
	out, err := gateway.Convert(c.Args().First(), c.String("gateway"))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func contains(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pinata contains <input>", 2)
	}
	switch d := gateway.ContainsCID(c.Args().First()).(type) {
	case gateway.Found:
		fmt.Printf("%s (%s)\n", d.CID, d.Form)
		return nil
	default:
		return cli.NewExitError("no CID found", 1)
	}
}

func unpin(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.NewExitError("usage: pinata unpin <cid>...", 2)
	}
	return withClient(c, func(ctx context.Context, client *sdk.Client) error {
		res, err := client.Unpin(ctx, c.Args())
		if printErr := printJSON(res); printErr != nil {
			return printErr
		}
		return err
	})
}

func listKeys(c *cli.Context) error {
	return withClient(c, func(ctx context.Context, client *sdk.Client) error {
		keys, err := client.Keys.List(ctx, &model.KeyListQuery{
			Name:   c.String("name"),
			Offset: c.Int("offset"),
		})
		if err != nil {
			return err
		}
		return printJSON(keys)
	})
}

func uploadJSON(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pinata upload-json <file>", 2)
	}
	raw, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", c.Args().First(), err)
	}
	return withClient(c, func(ctx context.Context, client *sdk.Client) error {
		pin, err := client.Upload.UploadJSON(ctx, doc, uploadOptions(c, ""))
		if err != nil {
			return err
		}
		return printJSON(pin)
	})
}

func uploadFile(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pinata upload-file <file>", 2)
	}
	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return withClient(c, func(ctx context.Context, client *sdk.Client) error {
		name := filepath.Base(path)
		pin, err := client.Upload.UploadFile(ctx, name, f, uploadOptions(c, name))
		if err != nil {
			return err
		}
		return printJSON(pin)
	})
}

func pinCount(c *cli.Context) error {
	return withClient(c, func(ctx context.Context, client *sdk.Client) error {
		n, err := client.Usage.PinnedFileCount(ctx)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	})
}

func uploadOptions(c *cli.Context, defaultName string) *model.UploadOptions {
	opts := &model.UploadOptions{GroupID: c.String("group")}
	name := c.String("name")
	if name == "" {
		name = defaultName
	}
	if name != "" {
		opts.Metadata = &model.PinataMetadata{Name: name}
	}
	if v := c.Int("cid-version"); v == 0 || v == 1 {
		opts.CIDVersion = &v
	}
	return opts
}

// withClient loads the configuration, builds a client and runs fn with a
// context cancelled on SIGINT/SIGTERM.
func withClient(c *cli.Context, fn func(context.Context, *sdk.Client) error) error {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return err
	}
	client, err := sdk.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = fn(ctx, client)
	if errors.Is(err, context.Canceled) {
		return cli.NewExitError("interrupted", 130)
	}
	return err
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
