package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/framesketch/framesketch/pkg/pipeline"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// analyzeCommand creates the analyze command, which runs only the
// classification stage and explains what the pipeline would build.
func (c *CLI) analyzeCommand() *cobra.Command {
	var noCache bool
	var report string

	cmd := &cobra.Command{
		Use:   "analyze [prompt]",
		Short: "Show the layout intent extracted from a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args[0], noCache, report)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the local classification cache")
	cmd.Flags().StringVar(&report, "report", "", "also write a markdown report to this file")

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, prompt string, noCache bool, report string) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := newProgress(c.Logger)
	cls, err := runner.Classify(cmd.Context(), pipeline.Options{Prompt: prompt})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Classified as %s", cls.Archetype))

	printNewline()
	printKeyValue("Archetype", string(cls.Archetype))
	printKeyValue("Fidelity", string(cls.Fidelity))
	printKeyValue("Components", joinComponents(cls.Components))
	printKeyValue("Canvas", fmt.Sprintf("%dx%d", cls.SuggestedWidth, cls.SuggestedHeight))
	printKeyValue("Confidence", fmt.Sprintf("%.2f", cls.Confidence))
	printNewline()

	if report != "" {
		if err := writeAnalysisReport(report, prompt, cls); err != nil {
			return err
		}
		printFile(report)
	}

	printNextStep("Generate it", fmt.Sprintf("%s generate %q", appName, prompt))
	return nil
}

// joinComponents renders component types as a comma-separated string.
func joinComponents(types []wireframe.ComponentType) string {
	s := ""
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += string(t)
	}
	return s
}

// writeAnalysisReport writes the classification as a markdown document.
func writeAnalysisReport(path, prompt string, cls wireframe.Classification) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	md := markdown.NewMarkdown(f)
	md.H1("Wireframe Analysis")
	md.PlainText("")
	md.PlainText("Prompt: " + prompt)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Archetype", string(cls.Archetype)},
			{"Fidelity", string(cls.Fidelity)},
			{"Suggested canvas", fmt.Sprintf("%dx%d", cls.SuggestedWidth, cls.SuggestedHeight)},
			{"Confidence", strconv.FormatFloat(cls.Confidence, 'f', 2, 64)},
		},
	})
	md.PlainText("")
	md.H2("Components")
	md.PlainText("")

	items := make([]string, len(cls.Components))
	for i, t := range cls.Components {
		items[i] = string(t)
	}
	md.BulletList(items...)

	return md.Build()
}
