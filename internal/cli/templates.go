package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/framesketch/framesketch/pkg/store"
)

// templatesCommand creates the templates command for browsing the built-in
// prompt templates.
func (c *CLI) templatesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse built-in prompt templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := store.BuiltinTemplates()
			if !interactive {
				listTemplates(templates)
				return nil
			}
			return pickTemplate(templates)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a template interactively")

	return cmd
}

// listTemplates prints every template with its prompt.
func listTemplates(templates []store.Template) {
	for _, t := range templates {
		printInfo("%s %s", t.ID, StyleDim.Render("("+string(t.Archetype)+")"))
		printDetail("%s", t.Description)
		printDetail("prompt: %s", t.Prompt)
		printNewline()
	}
	printNextStep("Use one", fmt.Sprintf("%s templates --interactive", appName))
}

// pickTemplate runs the interactive picker and prints the chosen template's
// generate command.
func pickTemplate(templates []store.Template) error {
	model := NewTemplateListModel(templates)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(TemplateListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	t := m.Selected
	printNewline()
	printKeyValue("Template", t.Name)
	printKeyValue("Archetype", string(t.Archetype))
	printKeyValue("Prompt", t.Prompt)
	printNewline()
	printNextStep("Generate it", fmt.Sprintf("%s generate %q --archetype %s --style %s",
		appName, t.Prompt, t.Archetype, t.Fidelity))
	return nil
}
