// Command inkpress renders marked-up text onto template images and
// serves the HTTP preview editor.
//
// Usage:
//
//	inkpress render -assets DIR -template card.png -font Roboto.ttf -text "[size=60]Hi[/size]" -out out.png
//	inkpress reply -assets DIR -config commands.json -message "/office"
//	inkpress serve -assets DIR -addr :5001
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkpress/inkpress"
	"github.com/inkpress/inkpress/command"
	"github.com/inkpress/inkpress/preview"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "render":
		runRender(os.Args[2:])
	case "reply":
		runReply(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  inkpress render -assets DIR -template NAME -font NAME -text TEXT [options] -out FILE
  inkpress reply  -assets DIR -config FILE -message TEXT
  inkpress serve  -assets DIR [-addr :5001]

Run "inkpress <command> -h" for flag details.`)
}

func runRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var (
		assetsDir = fs.String("assets", "assets", "asset directory (font/ and templates/ inside)")
		template  = fs.String("template", "", "template image name")
		font      = fs.String("font", "", "font file name")
		text      = fs.String("text", "", "text to render, may contain markup and \\n")
		colorHex  = fs.String("color", inkpress.DefaultColor, "default text color")
		size      = fs.Int("size", inkpress.DefaultFontSize, "default font size in pixels")
		spacing   = fs.Float64("spacing", inkpress.DefaultLineSpacing, "line spacing multiplier")
		maxWidth  = fs.Int("max-width", 0, "wrap width in pixels, 0 disables wrapping")
		x         = fs.Int("x", 0, "pen start x")
		y         = fs.Int("y", 0, "pen start y")
		format    = fs.String("format", "png", "output format: png, jpg, jpeg or bmp")
		quality   = fs.Int("quality", 0, "jpeg quality 1-100, 0 for the default")
		out       = fs.String("out", "", "output file, \"-\" for stdout")
		verbose   = fs.Bool("v", false, "log render diagnostics to stderr")
	)
	fs.Parse(args)

	if *verbose {
		inkpress.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *out == "" {
		log.Fatal("render: -out is required")
	}

	r := inkpress.NewRenderer(inkpress.NewAssets(*assetsDir))
	data, finalFormat, err := r.Generate(*text, inkpress.Options{
		TemplateName: *template,
		FontName:     *font,
		Color:        *colorHex,
		FontSize:     *size,
		LineSpacing:  *spacing,
		MaxWidth:     *maxWidth,
		Position:     [2]int{*x, *y},
		OutputFormat: *format,
		Quality:      *quality,
	})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if *out == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("render: write stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("wrote %s (%d bytes, %s)", *out, len(data), finalFormat)
}

// runReply resolves a chat message against the command table the way
// a messaging host would: it prints a plain reply to stdout, or for an
// image command renders the reply and hands back the temp file path.
func runReply(args []string) {
	fs := flag.NewFlagSet("reply", flag.ExitOnError)
	var (
		assetsDir = fs.String("assets", "assets", "asset directory (font/ and templates/ inside)")
		config    = fs.String("config", "commands.json", "command configuration file")
		message   = fs.String("message", "", "incoming message to match")
	)
	fs.Parse(args)

	table, err := command.LoadConfig(*config)
	if err != nil {
		log.Fatalf("reply: %v", err)
	}

	reply, ok := table.Match(*message, time.Now())
	if !ok {
		log.Fatalf("reply: no command matches %q", *message)
	}
	if reply.Options == nil {
		fmt.Println(reply.Text)
		return
	}

	r := inkpress.NewRenderer(inkpress.NewAssets(*assetsDir))
	data, format, err := r.Generate(reply.Text, *reply.Options)
	if err != nil {
		// The host's plain-text fallback when rendering fails.
		fmt.Println(reply.Text)
		log.Fatalf("reply: render failed, falling back to text: %v", err)
	}
	path, err := inkpress.WriteTemp(data, format)
	if err != nil {
		log.Fatalf("reply: %v", err)
	}
	fmt.Println(path)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		assetsDir = fs.String("assets", "assets", "asset directory (font/ and templates/ inside)")
		addr      = fs.String("addr", ":5001", "listen address")
	)
	fs.Parse(args)

	inkpress.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	r := inkpress.NewRenderer(inkpress.NewAssets(*assetsDir))
	srv := preview.New(*addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("preview server listening on %s", *addr)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
