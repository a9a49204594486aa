package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/accordion/pkg/accordion"
	"github.com/vango-dev/accordion/pkg/render"
)

type renderOptions struct {
	width     float64
	open      []int
	closeAll  bool
	container string
	pretty    bool
	out       string
}

func renderCmd(flags *globalFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [page.html]",
		Short: "Bind a page and print the resulting HTML",
		Long: `Bind the accordion in an HTML page and print the markup with ids,
ARIA attributes, state attributes and the accordion stylesheet applied.

Without a page the built-in demo is rendered.

Examples:
  accordion render faq.html
  accordion render faq.html --open=0,2 --container=faq
  accordion render faq.html --width=1400 --out=faq.out.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return runRender(cmd.OutOrStdout(), flags, file, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "w", 1024, "Viewport width used for the breakpoints")
	cmd.Flags().IntSliceVar(&opts.open, "open", nil, "Indexes of items to open")
	cmd.Flags().BoolVar(&opts.closeAll, "close-all", false, "Close every item before opening --open")
	cmd.Flags().StringVar(&opts.container, "container", "", "Id of the element holding the items (default: whole page)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRender(stdout io.Writer, flags *globalFlags, file string, opts renderOptions) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	page, err := pageSource(file)
	if err != nil {
		return err
	}
	doc, err := page()
	if err != nil {
		return err
	}
	container, err := selectContainer(doc, opts.container)
	if err != nil {
		return err
	}

	host := newStaticHost(opts.width)
	group := accordion.New(container, host, append(cfg.Options(),
		accordion.WithDocument(doc),
		accordion.WithIDSource(accordion.CountingIDs("acc")),
	)...)
	defer group.Release()

	if opts.closeAll {
		group.CloseAll()
	}
	for _, i := range opts.open {
		it := group.Item(i)
		if it == nil {
			return fmt.Errorf("--open: no item %d (page has %d)", i, group.Len())
		}
		group.Open(it)
	}
	host.drain()

	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty})
	html, err := renderer.RenderToString(doc)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = io.WriteString(stdout, html)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(html), 0644); err != nil {
		return err
	}
	success(stdout, "Rendered %d items to %s", group.Len(), opts.out)
	return nil
}
