package tui

import (
	"fmt"
	"time"

	"rozkladctl/pkg/config"
	"rozkladctl/pkg/schedule"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI lets the user edit the persistent settings interactively.
func RunConfigTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	specOptions := []huh.Option[string]{huh.NewOption("немає", "")}
	for _, code := range schedule.FEN.Codes() {
		specOptions = append(specOptions, huh.NewOption(code, code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Типова спеціалізація").
				Description("Використовується, коли --spec не задано.").
				Options(specOptions...).
				Value(&cfg.DefaultSpec),
			huh.NewInput().
				Title("Понеділок першого тижня (YYYY-MM-DD)").
				Value(&cfg.SemesterStart).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := time.Parse("2006-01-02", s)
					return err
				}),
			huh.NewInput().
				Title("Акцентний колір (ANSI 0-255)").
				Value(&cfg.AccentColor),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Println(accentStyle.Render("Налаштування збережено ✅"))
	return nil
}
