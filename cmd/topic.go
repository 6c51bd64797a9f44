package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/storekeep/storekeep/docs"
)

type topicCmd struct {
	theme string
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `skp topic <topic>

Show documentation for a given topic. Without arguments, shows the topic list.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "auto", "Glamour style used to render the topic.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc, c.theme)

	return subcommands.ExitSuccess
}
