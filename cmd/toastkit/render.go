package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/render"
	"github.com/vango-dev/toastkit/pkg/timer"
	"github.com/vango-dev/toastkit/pkg/toast"
)

type renderOptions struct {
	configPath string
	message    string
	typ        string
	id         string
	at         time.Duration
	markup     bool
	pretty     bool
	page       bool
}

func renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [message]",
		Short: "Render a toast to HTML",
		Long: `Show one toast in a fresh document and print the container HTML.

The document runs on a virtual clock. --at advances it before printing,
so the output shows the toast as it would look at that moment.

Examples:
  toastkit render "Saved" --type=success
  toastkit render "Saved" --at=5s       # toast-exit state
  toastkit render "Saved" --at=5300ms   # removed, empty container`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.message = args[0]
			}
			return runRender(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default ./toastkit.json)")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "Toast message")
	cmd.Flags().StringVarP(&opts.typ, "type", "t", string(toast.TypeInfo), "Toast type")
	cmd.Flags().StringVar(&opts.id, "id", "", "Toast ID (default random)")
	cmd.Flags().DurationVar(&opts.at, "at", 0, "Advance the clock by this long before printing")
	cmd.Flags().BoolVar(&opts.markup, "markup", false, "Insert the message as raw HTML")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Print a full HTML page")

	return cmd
}

func runRender(w io.Writer, opts renderOptions) error {
	if opts.at < 0 {
		return errors.New("E102").
			WithDetail("--at must not be negative.")
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings := cfg.ToastSettings()
	if opts.markup {
		settings.MessageMode = toast.MessageMarkup
	}

	toastOpts := []toast.Option{toast.WithConfig(settings)}
	if opts.id != "" {
		id := opts.id
		toastOpts = append(toastOpts, toast.WithIDFunc(func() string { return id }))
	}

	doc := dom.NewDocument()
	clock := timer.NewManual()
	t := toast.New(doc, clock, toastOpts...)
	t.Show(context.Background(), opts.message, toast.Type(opts.typ))
	clock.Advance(opts.at)

	r := render.NewRenderer(render.RendererConfig{
		Pretty:        opts.pretty || cfg.Render.Pretty,
		OmitHydration: true,
	})

	if opts.page {
		return r.RenderPage(w, render.PageData{Body: doc.Body().ToVNode(), Title: "toastkit"})
	}

	html, err := r.RenderNode(t.Container())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, html)
	return err
}
