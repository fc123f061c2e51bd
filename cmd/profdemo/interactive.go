package main

import (
	"fmt"
	"strconv"

	"profdemo/internal/config"
	"profdemo/internal/runner"
	"profdemo/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// askOneFunc allows mocking survey prompts in tests.
var askOneFunc = survey.AskOne

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive benchmark menu",
	Run: func(cmd *cobra.Command, args []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive drives the main menu loop: select an action, execute
// it, pause, repeat until the user quits.
func RunInteractive() {
	for {
		selected, ok := selectAction()
		if !ok {
			fmt.Println("Bye!")
			return
		}

		switch selected {
		case "run-all":
			if err := runAllCmd.RunE(runAllCmd, nil); err != nil {
				fmt.Println(ui.RenderError(err))
			}
		case "compare":
			if err := runCompare(compareCmd, nil); err != nil {
				fmt.Println(ui.RenderError(err))
			}
		case "export":
			if err := runExport(exportCmd, nil); err != nil {
				fmt.Println(ui.RenderError(err))
			}
		case "history":
			if err := runHistory(historyCmd, nil); err != nil {
				fmt.Println(ui.RenderError(err))
			}
		case "explain":
			if err := runExplain(explainCmd, nil); err != nil {
				fmt.Println(ui.RenderError(err))
			}
		default:
			runBenchmarkInteractive(selected)
		}

		pause()
	}
}

func menuItems() []ui.MenuItem {
	var items []ui.MenuItem
	for _, s := range registry.Specs() {
		items = append(items, ui.MenuItem{
			ID:   s.Name,
			Name: s.Name,
			Desc: fmt.Sprintf("%s - %s", s.Description, s.Complexity),
		})
	}
	items = append(items,
		ui.MenuItem{ID: "run-all", Name: "run-all", Desc: "Execute all benchmarks with profiling"},
		ui.MenuItem{ID: "compare", Name: "compare", Desc: "Best-of-N timing comparison"},
		ui.MenuItem{ID: "export", Name: "export", Desc: "Generate profile data for external tools"},
		ui.MenuItem{ID: "history", Name: "history", Desc: "Show saved comparison results"},
		ui.MenuItem{ID: "explain", Name: "explain", Desc: "What each benchmark demonstrates"},
	)
	return items
}

// selectAction shows the menu and returns the chosen action id, or
// ok=false when the user quit.
func selectAction() (string, bool) {
	p := tea.NewProgram(ui.NewMenuModel(menuItems()))
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		exit(1)
		return "", false
	}

	m := final.(ui.MenuModel)
	if m.Quitting || m.Selected == "" {
		return "", false
	}
	return m.Selected, true
}

func runBenchmarkInteractive(name string) {
	spec, err := registry.Lookup(name)
	if err != nil {
		fmt.Println(ui.RenderError(err))
		return
	}

	arg, err := promptArg(spec.Name, config.BenchArg(spec.Name, spec.DefaultArg))
	if err != nil {
		return // user cancelled
	}

	title := fmt.Sprintf("Running %s with n=%d...", spec.Name, arg)
	model := ui.NewRunModel(title, func() ui.RunDoneMsg {
		res, err := runner.Run(registry, name, arg)
		if err != nil {
			return ui.RunDoneMsg{Err: err}
		}
		return ui.RunDoneMsg{Output: ui.RenderRunResult(res, viper.GetInt("top"))}
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return
	}

	m := final.(ui.RunModel)
	if m.Err != nil {
		fmt.Println(ui.RenderError(m.Err))
		return
	}
	fmt.Println(m.Output)
}

func promptArg(name string, fallback int64) (int64, error) {
	input := strconv.FormatInt(fallback, 10)
	err := askOneFunc(&survey.Input{
		Message: fmt.Sprintf("Argument for %s:", name),
		Default: input,
	}, &input)
	if err != nil {
		return 0, err
	}

	arg, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		fmt.Printf("Not a number, using default %d\n", fallback)
		return fallback, nil
	}
	return arg, nil
}

func pause() {
	cont := ""
	_ = askOneFunc(&survey.Input{Message: "Press Enter to continue"}, &cont)
}
