// Command invoicekit is the entry point for the invoice document tooling:
// it serves the document store over HTTP, renders terminal previews, and
// exports documents to PDF.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/invoicekit/invoicekit"
	"github.com/invoicekit/invoicekit/httpapi"
	"github.com/invoicekit/invoicekit/internal/debug"
	"github.com/invoicekit/invoicekit/render"
	"github.com/invoicekit/invoicekit/store"
	"github.com/invoicekit/invoicekit/store/postgres"
)

func main() {
	app := &cli.App{
		Name:  "invoicekit",
		Usage: "invoice document layout tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "debug-log",
				Usage:   "append debug logging to `FILE`",
				EnvVars: []string{"INVOICEKIT_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			return debug.Init(c.String("debug-log"))
		},
		After: func(c *cli.Context) error {
			return debug.Close()
		},
		Commands: []*cli.Command{
			serveCommand(),
			showCommand(),
			exportCommand(),
			demoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "invoicekit:", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the document store over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen `ADDRESS`",
				Value: ":8080",
			},
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "postgres `DSN`; empty uses the in-memory store",
				EnvVars: []string{"INVOICEKIT_DSN"},
			},
		},
		Action: func(c *cli.Context) error {
			var st store.Store
			if dsn := c.String("dsn"); dsn != "" {
				pg, err := postgres.Open(c.Context, dsn)
				if err != nil {
					return err
				}
				defer pg.Close()
				st = pg
			} else {
				st = store.NewMemoryWithTemplate()
			}

			addr := c.String("addr")
			fmt.Printf("invoicekit: serving on %s\n", addr)
			return http.ListenAndServe(addr, httpapi.NewServer(st))
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print a terminal preview of a document",
		ArgsUsage: "[document.json]",
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Print(render.Text(doc))
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export a document to PDF",
		ArgsUsage: "[document.json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "output `FILE`",
				Value: "invoice.pdf",
			},
		},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c.Args().First())
			if err != nil {
				return err
			}
			out, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			defer out.Close()
			if err := render.PDF(doc, out); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", c.String("out"))
			return nil
		},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "print the stock invoice template as JSON",
		Action: func(c *cli.Context) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(invoicekit.BasicTemplate())
		},
	}
}

// loadDocument reads a document from a JSON file, or returns the stock
// template when no path is given.
func loadDocument(path string) (invoicekit.Document, error) {
	if path == "" {
		return invoicekit.BasicTemplate(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return invoicekit.Document{}, err
	}
	var doc invoicekit.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invoicekit.Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
