package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/accordion/pkg/tui"
)

type tuiOptions struct {
	container     string
	title         string
	reducedMotion bool
}

func tuiCmd(flags *globalFlags) *cobra.Command {
	opts := tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui [page.html]",
		Short: "Browse a page's accordion in the terminal",
		Long: `Show the accordion of an HTML page in the terminal.

Breakpoints are compared with the terminal width in columns and body
heights are measured in wrapped lines.

Keys:
  ↑/↓ or k/j   select an item
  enter/space  toggle it
  a / c        open all / close all
  m            toggle reduced motion
  q            quit

Examples:
  accordion tui
  accordion tui faq.html --container=faq --title="FAQ"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runTUI(ctx, flags, file, opts)
		},
	}

	cmd.Flags().StringVar(&opts.container, "container", "", "Id of the element holding the items (default: whole page)")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Title shown above the items")
	cmd.Flags().BoolVar(&opts.reducedMotion, "reduced-motion", false, "Start with reduced motion")

	return cmd
}

func runTUI(ctx context.Context, flags *globalFlags, file string, opts tuiOptions) error {
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

	m := tui.New(container, tui.Config{
		Title:         opts.title,
		Options:       cfg.Options(),
		ReducedMotion: opts.reducedMotion || cfg.Server.ReducedMotionDefault,
	})
	defer m.Group().Release()
	return tui.Run(ctx, m)
}
